package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJobCardRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	jobCardController := controllers.NewJobCardController(db)
	api := app.Group(config.MAIN_ROUTES+"/jobcards", auth.Handler)

	api.Get("/", jobCardController.GetAllJobCards)
	api.Post("/", jobCardController.CreateJobCard)
	api.Get("/:id", jobCardController.GetJobCardByID)
	api.Put("/:id", jobCardController.UpdateJobCard)
	api.Delete("/:id", jobCardController.DeleteJobCard)
	api.Get("/:id/stages/:tag", jobCardController.HasStage)
	api.Get("/:id/availability", jobCardController.StageAvailability)
	api.Post("/:id/complete", jobCardController.CompleteStage)
}
