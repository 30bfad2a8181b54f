package controllers

import (
	"context"
	"errors"
	"log"

	"packflow/repositories"

	"github.com/gofiber/fiber/v2"
)

// respondError maps repository error kinds to HTTP statuses. Internal causes
// are logged server-side and never echoed to the caller.
func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, repositories.ErrAlreadyConsumed),
		errors.Is(err, repositories.ErrAlreadyReturned),
		errors.Is(err, repositories.ErrStockConsumed),
		errors.Is(err, repositories.ErrNoneMatched),
		errors.Is(err, repositories.ErrPartialMatch):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return ctx.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{"success": false, "message": "request timed out"})
	default:
		log.Println("internal error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "internal server error"})
	}
}

// actorID reads the authenticated user id set by the auth middleware.
func actorID(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}
