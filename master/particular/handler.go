package particular

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ParticularHandler struct {
	DB *gorm.DB
}

func NewParticularHandler(db *gorm.DB) *ParticularHandler {
	return &ParticularHandler{DB: db}
}

type particularInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ParticularHandler) GetAllParticulars(ctx *fiber.Ctx) error {
	var particulars []Particular
	if err := h.DB.Find(&particulars).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to retrieve particulars",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Particulars retrieved successfully",
		"data":    particulars,
	})
}

func (h *ParticularHandler) CreateParticular(ctx *fiber.Ctx) error {
	var input particularInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if input.Code == "" || input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "code and name are required"})
	}

	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		userID = 0
	}

	p := Particular{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   int(userID),
	}
	if err := h.DB.Create(&p).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Particular created successfully", "data": p})
}

func (h *ParticularHandler) GetParticularByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	var p Particular
	if err := h.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Particular not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Particular found", "data": p})
}

func (h *ParticularHandler) UpdateParticular(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	var input particularInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		userID = 0
	}

	p := Particular{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		UpdatedBy:   int(userID),
	}
	if err := h.DB.Model(&p).Where("id = ?", id).Updates(p).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Particular updated successfully"})
}

func (h *ParticularHandler) DeleteParticular(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID"})
	}

	if err := h.DB.Delete(&Particular{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Particular deleted successfully"})
}
