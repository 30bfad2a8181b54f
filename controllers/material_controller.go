package controllers

import (
	"packflow/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaterialController struct {
	DB   *gorm.DB
	repo *repositories.MaterialRepository
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db, repo: repositories.NewMaterialRepository(db)}
}

type createBatchInput struct {
	SupplierID uint                            `json:"supplier_id" validate:"required"`
	Items      []repositories.MaterialItemForm `json:"items" validate:"required,min=1,dive"`
}

// CreateBatch creates a batch with its initial reels; barcodes and stock
// units are assigned inside one transaction.
func (c *MaterialController) CreateBatch(ctx *fiber.Ctx) error {
	var input createBatchInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	batch, err := c.repo.CreateBatch(ctx.UserContext(), input.SupplierID, input.Items, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch created successfully", "data": batch})
}

func (c *MaterialController) GetAllBatches(ctx *fiber.Ctx) error {
	batches, err := c.repo.ListBatches(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batches found", "data": batches})
}

func (c *MaterialController) GetBatchByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	batch, err := c.repo.GetBatch(ctx.UserContext(), uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch found", "data": batch})
}

type addItemInput struct {
	BatchID *uint                         `json:"batch_id"`
	Item    repositories.MaterialItemForm `json:"item" validate:"required"`
}

// AddItem creates one reel, either inside a batch or in the unassigned
// staging area when batch_id is omitted.
func (c *MaterialController) AddItem(ctx *fiber.Ctx) error {
	var input addItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input.Item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	item, err := c.repo.AddItem(ctx.UserContext(), input.BatchID, input.Item, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

func (c *MaterialController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteItem(ctx.UserContext(), uint(id), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

type finalizeBatchInput struct {
	SupplierID uint   `json:"supplier_id" validate:"required"`
	ItemIDs    []uint `json:"item_ids" validate:"required,min=1"`
}

// FinalizeBatch groups staged reels into a new batch.
func (c *MaterialController) FinalizeBatch(ctx *fiber.Ctx) error {
	var input finalizeBatchInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	batch, err := c.repo.FinalizeBatch(ctx.UserContext(), input.ItemIDs, input.SupplierID, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch finalized successfully", "data": batch})
}

func (c *MaterialController) GetUnassignedItems(ctx *fiber.Ctx) error {
	items, err := c.repo.UnassignedItems(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Unassigned items found", "data": items})
}

// RepairBatch recomputes a batch's totals from its items.
func (c *MaterialController) RepairBatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	batch, err := c.repo.RecomputeBatchTotals(ctx.UserContext(), uint(id), actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch totals recomputed", "data": batch})
}
