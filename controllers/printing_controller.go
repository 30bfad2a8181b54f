package controllers

import (
	"strconv"

	"packflow/models"
	"packflow/repositories"
	"packflow/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PrintingController struct {
	DB       *gorm.DB
	repo     *repositories.StageRepository
	jobCards *repositories.JobCardRepository
}

func NewPrintingController(db *gorm.DB) *PrintingController {
	return &PrintingController{
		DB:       db,
		repo:     repositories.NewStageRepository(db),
		jobCards: repositories.NewJobCardRepository(db),
	}
}

type printingRecordInput struct {
	JobCardID types.SnowflakeID       `json:"job_card_id" validate:"required"`
	Design    string                  `json:"design"`
	Colours   int                     `json:"colours"`
	Wastage   float64                 `json:"wastage"`
	Packs     []repositories.PackForm `json:"packs" validate:"dive"`
}

// CreateRecord opens a printing entry. Printing tracks packs only and never
// touches stock.
func (c *PrintingController) CreateRecord(ctx *fiber.Ctx) error {
	var input printingRecordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	has, err := c.jobCards.HasStage(ctx.UserContext(), input.JobCardID, models.StagePrinting)
	if err != nil {
		return respondError(ctx, err)
	}
	if !has {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "job card does not include the printing stage"})
	}

	record := models.PrintingRecord{
		JobCardID: input.JobCardID,
		Design:    input.Design,
		Colours:   input.Colours,
		Wastage:   input.Wastage,
	}

	if err := c.repo.CreatePrintingRecord(ctx.UserContext(), &record, input.Packs, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Printing record created successfully", "data": record})
}

func (c *PrintingController) GetByJobCard(ctx *fiber.Ctx) error {
	jobCardID, err := strconv.ParseInt(ctx.Params("jobCardId"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid job card ID"})
	}

	records, err := c.repo.PrintingByJobCard(ctx.UserContext(), types.SnowflakeID(jobCardID))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Printing records found", "data": records})
}

func (c *PrintingController) DeletePack(ctx *fiber.Ctx) error {
	packID, err := ctx.ParamsInt("packId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid pack ID"})
	}

	if err := c.repo.DeletePrintingPack(ctx.UserContext(), uint(packID), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Pack deleted successfully"})
}
