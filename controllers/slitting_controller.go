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

type SlittingController struct {
	DB       *gorm.DB
	repo     *repositories.StageRepository
	jobCards *repositories.JobCardRepository
}

func NewSlittingController(db *gorm.DB) *SlittingController {
	return &SlittingController{
		DB:       db,
		repo:     repositories.NewStageRepository(db),
		jobCards: repositories.NewJobCardRepository(db),
	}
}

type slittingRecordInput struct {
	JobCardID     types.SnowflakeID       `json:"job_card_id" validate:"required"`
	SourceBarcode string                  `json:"source_barcode"`
	InputWeight   float64                 `json:"input_weight"`
	Size          float64                 `json:"size"`
	Gsm           int                     `json:"gsm"`
	Wastage       float64                 `json:"wastage"`
	Rolls         []repositories.RollForm `json:"rolls" validate:"dive"`
}

// CreateRecord opens a slitting entry. The job card must carry the slitting
// stage, and the source roll (when given) is consumed in the same
// transaction as the output rolls are created.
func (c *SlittingController) CreateRecord(ctx *fiber.Ctx) error {
	var input slittingRecordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	has, err := c.jobCards.HasStage(ctx.UserContext(), input.JobCardID, models.StageSlitting)
	if err != nil {
		return respondError(ctx, err)
	}
	if !has {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "job card does not include the slitting stage"})
	}

	record := models.SlittingRecord{
		JobCardID:     input.JobCardID,
		SourceBarcode: input.SourceBarcode,
		InputWeight:   input.InputWeight,
		Size:          input.Size,
		Gsm:           input.Gsm,
		Wastage:       input.Wastage,
	}

	if err := c.repo.CreateSlittingRecord(ctx.UserContext(), &record, input.Rolls, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Slitting record created successfully", "data": record})
}

func (c *SlittingController) GetByJobCard(ctx *fiber.Ctx) error {
	jobCardID, err := strconv.ParseInt(ctx.Params("jobCardId"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid job card ID"})
	}

	records, err := c.repo.SlittingByJobCard(ctx.UserContext(), types.SnowflakeID(jobCardID))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Slitting records found", "data": records})
}

func (c *SlittingController) AddRoll(ctx *fiber.Ctx) error {
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

	if err := c.repo.AddSlittingRoll(ctx.UserContext(), uint(recordID), form, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Roll added successfully"})
}

func (c *SlittingController) DeleteRoll(ctx *fiber.Ctx) error {
	rollID, err := ctx.ParamsInt("rollId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid roll ID"})
	}

	if err := c.repo.DeleteSlittingRoll(ctx.UserContext(), uint(rollID), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Roll deleted successfully"})
}

// DeleteRecord reverses the stage entry, releasing the consumed source roll.
func (c *SlittingController) DeleteRecord(ctx *fiber.Ctx) error {
	recordID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.DeleteSlittingRecord(ctx.UserContext(), uint(recordID), actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Slitting record deleted successfully"})
}
