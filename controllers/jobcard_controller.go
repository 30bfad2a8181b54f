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

type JobCardController struct {
	DB   *gorm.DB
	repo *repositories.JobCardRepository
}

func NewJobCardController(db *gorm.DB) *JobCardController {
	return &JobCardController{DB: db, repo: repositories.NewJobCardRepository(db)}
}

type jobCardInput struct {
	JobCardNo    string `json:"job_card_no"`
	CustomerID   uint   `json:"customer_id" validate:"required"`
	ParticularID uint   `json:"particular_id" validate:"required"`
	Stages       string `json:"stages" validate:"required"`
	Remarks      string `json:"remarks"`
}

func parseJobCardID(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	return types.SnowflakeID(id), err
}

func (c *JobCardController) CreateJobCard(ctx *fiber.Ctx) error {
	var input jobCardInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	stages := models.StageList(input.Stages)
	for _, tag := range stages.List() {
		if tag != models.StageSlitting && tag != models.StagePrinting && tag != models.StageCutting {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "unknown stage tag " + tag})
		}
	}

	card := models.JobCard{
		JobCardNo:    input.JobCardNo,
		CustomerID:   input.CustomerID,
		ParticularID: input.ParticularID,
		Stages:       stages,
		Remarks:      input.Remarks,
		CreatedBy:    actorID(ctx),
	}

	if err := c.repo.Create(ctx.UserContext(), &card); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job card created successfully", "data": card})
}

func (c *JobCardController) GetAllJobCards(ctx *fiber.Ctx) error {
	cards, err := c.repo.List(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job cards found", "data": cards})
}

func (c *JobCardController) GetJobCardByID(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	card, err := c.repo.Get(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job card found", "data": card})
}

// HasStage answers the cross-stage navigation probe for one stage tag.
func (c *JobCardController) HasStage(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	has, err := c.repo.HasStage(ctx.UserContext(), id, ctx.Params("tag"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stage membership checked", "data": fiber.Map{"has_stage": has}})
}

// StageAvailability reports which stage records exist for jump-to-stage links.
func (c *JobCardController) StageAvailability(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if _, err := c.repo.Get(ctx.UserContext(), id); err != nil {
		return respondError(ctx, err)
	}

	avail := c.repo.Availability(ctx.UserContext(), id)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stage availability", "data": avail})
}

type completeStageInput struct {
	Stage string `json:"stage" validate:"required"`
}

func (c *JobCardController) CompleteStage(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	var input completeStageInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := c.repo.CompleteStage(ctx.UserContext(), id, input.Stage, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stage marked complete"})
}

func (c *JobCardController) UpdateJobCard(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	var input jobCardInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	updates := map[string]interface{}{
		"customer_id":   input.CustomerID,
		"particular_id": input.ParticularID,
		"stages":        input.Stages,
		"remarks":       input.Remarks,
		"updated_by":    actorID(ctx),
	}
	if err := c.repo.Update(ctx.UserContext(), id, updates); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job card updated successfully"})
}

func (c *JobCardController) DeleteJobCard(ctx *fiber.Ctx) error {
	id, err := parseJobCardID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := c.repo.Delete(ctx.UserContext(), id, actorID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job card deleted successfully"})
}
