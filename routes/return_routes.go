package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReturnRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	returnController := controllers.NewReturnController(db)
	api := app.Group(config.MAIN_ROUTES+"/returns", auth.Handler)

	api.Get("/", returnController.GetAllReturns)
	api.Post("/", returnController.CreateReturn)
	api.Delete("/:id", returnController.DeleteReturn)
}
