package controllers

import (
	"go-canteen-api/src/controllers/models"
	"go-canteen-api/src/services/faults"
	"go-canteen-api/src/services/menu"

	"github.com/gofiber/fiber/v2"
)

type MenuController struct {
	menuService menu.MenuService
}

func NewMenuController(menuService menu.MenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

func (c *MenuController) Route(app *fiber.App) {
	api := app.Group("/api/menu")
	api.Get("/", c.ListMenu)
	api.Post("/add", c.AddMenuItem)
}

// ListMenu godoc
// @Summary      List menu items
// @Description  Returns every item on the canteen menu
// @Tags         menu
// @Produce      json
// @Success      200  {array}   menu.MenuItem
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/menu [get]
func (c *MenuController) ListMenu(ctx *fiber.Ctx) error {
	items, err := c.menuService.ListMenu(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching menu: " + err.Error()})
	}
	return ctx.JSON(items)
}

// AddMenuItem godoc
// @Summary      Add a menu item
// @Description  Adds a new item to the canteen menu
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        item  body  models.MenuItemRequest  true  "Menu item"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/menu/add [post]
func (c *MenuController) AddMenuItem(ctx *fiber.Ctx) error {
	var req models.MenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Price == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Menu item price is required."})
	}

	item := menu.MenuItem{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Category:    req.Category,
	}
	if _, err := c.menuService.AddMenuItem(ctx.UserContext(), item); err != nil {
		if faults.IsValidation(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Error adding menu item: " + err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Menu item added!"})
}
