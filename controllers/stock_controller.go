package controllers

import (
	"packflow/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB   *gorm.DB
	repo *repositories.StockRepository
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db, repo: repositories.NewStockRepository(db)}
}

func (c *StockController) GetAvailableStock(ctx *fiber.Ctx) error {
	units, err := c.repo.ListAvailable(ctx.UserContext(), ctx.Query("source_type"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": units})
}

func (c *StockController) GetByBarcode(ctx *fiber.Ctx) error {
	unit, err := c.repo.GetByBarcode(ctx.UserContext(), ctx.Params("barcode"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock unit found", "data": unit})
}

type stockActionInput struct {
	Barcode string `json:"barcode"`
}

// Consume flips an available roll to consumed.
func (c *StockController) Consume(ctx *fiber.Ctx) error {
	var input stockActionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	unit, err := c.repo.Consume(ctx.UserContext(), input.Barcode, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock unit consumed", "data": unit})
}

// Restore makes a consumed roll pickable again.
func (c *StockController) Restore(ctx *fiber.Ctx) error {
	var input stockActionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	unit, err := c.repo.Restore(ctx.UserContext(), input.Barcode, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock unit restored", "data": unit})
}
