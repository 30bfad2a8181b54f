package controllers

import (
	"packflow/repositories"
	"packflow/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BundleController struct {
	DB   *gorm.DB
	repo *repositories.BundleRepository
}

func NewBundleController(db *gorm.DB) *BundleController {
	return &BundleController{DB: db, repo: repositories.NewBundleRepository(db)}
}

type bundleItemInput struct {
	BundleID *uint                       `json:"bundle_id"`
	Item     repositories.BundleItemForm `json:"item" validate:"required"`
}

// CreateItem creates a finished-goods unit. Complete items get a barcode and
// enter sellable stock; non-complete items are tracked for weight only.
func (c *BundleController) CreateItem(ctx *fiber.Ctx) error {
	var input bundleItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input.Item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if input.Item.Complete {
		item, err := c.repo.CreateCompleteItem(ctx.UserContext(), input.BundleID, input.Item, actorID(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
	}

	item, err := c.repo.CreateNonCompleteItem(ctx.UserContext(), input.BundleID, input.Item, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

func (c *BundleController) DeleteCompleteItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteCompleteItem(ctx.UserContext(), uint(id), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

type finalizeBundleInput struct {
	JobCardID types.SnowflakeID `json:"job_card_id" validate:"required"`
	ItemIDs   []uint            `json:"item_ids" validate:"required,min=1"`
}

// FinalizeBundle groups staged complete items into a bundle for a job card.
func (c *BundleController) FinalizeBundle(ctx *fiber.Ctx) error {
	var input finalizeBundleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	bundle, err := c.repo.FinalizeBundle(ctx.UserContext(), input.ItemIDs, input.JobCardID, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bundle finalized successfully", "data": bundle})
}

func (c *BundleController) GetAllBundles(ctx *fiber.Ctx) error {
	bundles, err := c.repo.ListBundles(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bundles found", "data": bundles})
}

func (c *BundleController) GetBundleByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	bundle, err := c.repo.GetBundle(ctx.UserContext(), uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bundle found", "data": bundle})
}

func (c *BundleController) GetUnassignedItems(ctx *fiber.Ctx) error {
	items, err := c.repo.UnassignedCompleteItems(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Unassigned items found", "data": items})
}

// RepairBundle recomputes a bundle's totals from its items.
func (c *BundleController) RepairBundle(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	bundle, err := c.repo.RecomputeBundleTotals(ctx.UserContext(), uint(id), actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bundle totals recomputed", "data": bundle})
}
