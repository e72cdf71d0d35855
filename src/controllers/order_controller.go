package controllers

import (
	"errors"

	"go-canteen-api/src/controllers/models"
	"go-canteen-api/src/services/faults"
	"go-canteen-api/src/services/order/domain"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	orderService domain.OrderService
}

func NewOrderController(orderService domain.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/orders")
	api.Post("/", c.SubmitOrder)
	api.Get("/", c.FetchOrders)
	api.Patch("/:id/status", c.UpdateOrderStatus)
}

// SubmitOrder godoc
// @Summary      Place a new order
// @Description  Validates the cart payload and persists a new order with status Pending
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body  models.OrderRequest  true  "Cart payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/orders [post]
func (c *OrderController) SubmitOrder(ctx *fiber.Ctx) error {
	var req models.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	items := make([]domain.OrderLineItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Price == nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required order data (items, totalAmount)."})
		}
		items = append(items, domain.OrderLineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      *item.Price,
			Quantity:   item.Quantity,
		})
	}

	orderID, err := c.orderService.SubmitOrder(ctx.UserContext(), items, req.TotalAmount)
	if err != nil {
		if faults.IsValidation(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Error saving order: " + err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully!",
		"orderId": orderID,
	})
}

// FetchOrders godoc
// @Summary      List all orders
// @Description  Returns every order sorted by creation time, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/orders [get]
func (c *OrderController) FetchOrders(ctx *fiber.Ctx) error {
	orders, err := c.orderService.FetchOrders(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching orders: " + err.Error()})
	}
	return ctx.JSON(orders)
}

// UpdateOrderStatus godoc
// @Summary      Update an order's status
// @Description  Moves an order along the lifecycle Pending -> Preparing -> Ready -> Completed, or cancels it
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path  string                      true  "Order ID"
// @Param        status  body  models.StatusUpdateRequest  true  "New status"
// @Success      200  {object}  domain.Order
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/orders/{id}/status [patch]
func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	var req models.StatusUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	order, err := c.orderService.UpdateOrderStatus(ctx.UserContext(), ctx.Params("id"), domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case faults.IsValidation(err):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating order: " + err.Error()})
		}
	}
	return ctx.JSON(order)
}
