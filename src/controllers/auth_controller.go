package controllers

import (
	"go-canteen-api/src/controllers/models"
	"go-canteen-api/src/services/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	verifier auth.CredentialVerifier
}

func NewAuthController(verifier auth.CredentialVerifier) *AuthController {
	return &AuthController{
		verifier: verifier,
	}
}

func (c *AuthController) Route(app *fiber.App) {
	app.Post("/api/login", c.Login)
}

// Login godoc
// @Summary      Log in
// @Description  Checks canteen credentials; no session or token is issued
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  models.LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/login [post]
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req models.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if !c.verifier.Verify(ctx.UserContext(), req.Username, req.Password) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password."})
	}
	return ctx.JSON(fiber.Map{"message": "Login successful"})
}
