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

type CuttingController struct {
	DB       *gorm.DB
	repo     *repositories.StageRepository
	jobCards *repositories.JobCardRepository
}

func NewCuttingController(db *gorm.DB) *CuttingController {
	return &CuttingController{
		DB:       db,
		repo:     repositories.NewStageRepository(db),
		jobCards: repositories.NewJobCardRepository(db),
	}
}

type cuttingRecordInput struct {
	JobCardID     types.SnowflakeID       `json:"job_card_id" validate:"required"`
	SourceBarcode string                  `json:"source_barcode"`
	CutSize       float64                 `json:"cut_size"`
	Wastage       float64                 `json:"wastage"`
	Rolls         []repositories.RollForm `json:"rolls" validate:"dive"`
}

func (c *CuttingController) CreateRecord(ctx *fiber.Ctx) error {
	var input cuttingRecordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	has, err := c.jobCards.HasStage(ctx.UserContext(), input.JobCardID, models.StageCutting)
	if err != nil {
		return respondError(ctx, err)
	}
	if !has {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "job card does not include the cutting stage"})
	}

	record := models.CuttingRecord{
		JobCardID:     input.JobCardID,
		SourceBarcode: input.SourceBarcode,
		CutSize:       input.CutSize,
		Wastage:       input.Wastage,
	}

	if err := c.repo.CreateCuttingRecord(ctx.UserContext(), &record, input.Rolls, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cutting record created successfully", "data": record})
}

func (c *CuttingController) GetByJobCard(ctx *fiber.Ctx) error {
	jobCardID, err := strconv.ParseInt(ctx.Params("jobCardId"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid job card ID"})
	}

	records, err := c.repo.CuttingByJobCard(ctx.UserContext(), types.SnowflakeID(jobCardID))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cutting records found", "data": records})
}

func (c *CuttingController) AddRoll(ctx *fiber.Ctx) error {
	recordID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	var form repositories.RollForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := c.repo.AddCuttingRoll(ctx.UserContext(), uint(recordID), form, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Roll added successfully"})
}

func (c *CuttingController) DeleteRoll(ctx *fiber.Ctx) error {
	rollID, err := ctx.ParamsInt("rollId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid roll ID"})
	}

	if err := c.repo.DeleteCuttingRoll(ctx.UserContext(), uint(rollID), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Roll deleted successfully"})
}

func (c *CuttingController) DeleteRecord(ctx *fiber.Ctx) error {
	recordID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteCuttingRecord(ctx.UserContext(), uint(recordID), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cutting record deleted successfully"})
}
