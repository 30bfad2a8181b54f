package controllers

import (
	"strconv"

	"packflow/repositories"
	"packflow/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReturnController struct {
	DB   *gorm.DB
	repo *repositories.SalesRepository
}

func NewReturnController(db *gorm.DB) *ReturnController {
	return &ReturnController{DB: db, repo: repositories.NewSalesRepository(db)}
}

type returnInput struct {
	CustomerID uint                         `json:"customer_id" validate:"required"`
	Remarks    string                       `json:"remarks"`
	Items      []repositories.SalesLineForm `json:"items" validate:"required,min=1,dive"`
}

func (c *ReturnController) CreateReturn(ctx *fiber.Ctx) error {
	var input returnInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	ret, err := c.repo.CreateReturn(ctx.UserContext(), input.CustomerID, input.Items, input.Remarks, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Return created successfully", "data": ret})
}

func (c *ReturnController) GetAllReturns(ctx *fiber.Ctx) error {
	returns, err := c.repo.ListReturns(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Returns found", "data": returns})
}

// DeleteReturn releases every barcode the return claimed.
func (c *ReturnController) DeleteReturn(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteReturn(ctx.UserContext(), types.SnowflakeID(id), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Return deleted successfully"})
}
