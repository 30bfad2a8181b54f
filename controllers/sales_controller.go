package controllers

import (
	"strconv"

	"packflow/repositories"
	"packflow/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SalesController struct {
	DB   *gorm.DB
	repo *repositories.SalesRepository
}

func NewSalesController(db *gorm.DB) *SalesController {
	return &SalesController{DB: db, repo: repositories.NewSalesRepository(db)}
}

// ValidateBarcode is the scanner endpoint: it answers whether a finished
// goods barcode is still sellable and returns its summary.
func (c *SalesController) ValidateBarcode(ctx *fiber.Ctx) error {
	summary, err := c.repo.ValidateBarcodeForSale(ctx.UserContext(), ctx.Params("barcode"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Barcode is sellable", "data": summary})
}

type deliveryOrderInput struct {
	CustomerID uint                         `json:"customer_id" validate:"required"`
	Remarks    string                       `json:"remarks"`
	Items      []repositories.SalesLineForm `json:"items" validate:"required,min=1,dive"`
}

// CreateDeliveryOrder books the order and takes every scanned item out of
// stock in one transaction.
func (c *SalesController) CreateDeliveryOrder(ctx *fiber.Ctx) error {
	var input deliveryOrderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	order, err := c.repo.CreateDeliveryOrder(ctx.UserContext(), input.CustomerID, input.Items, input.Remarks, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery order created successfully", "data": order})
}

func (c *SalesController) GetAllDeliveryOrders(ctx *fiber.Ctx) error {
	orders, err := c.repo.ListDeliveryOrders(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery orders found", "data": orders})
}

func (c *SalesController) GetDeliveryOrderByID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	order, err := c.repo.GetDeliveryOrder(ctx.UserContext(), types.SnowflakeID(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery order found", "data": order})
}

// DeleteDeliveryOrder is the bulk undo: every sold item goes back into stock.
func (c *SalesController) DeleteDeliveryOrder(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteDeliveryOrder(ctx.UserContext(), types.SnowflakeID(id), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery order deleted successfully"})
}
