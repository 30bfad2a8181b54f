package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSlittingRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	slittingController := controllers.NewSlittingController(db)
	api := app.Group(config.MAIN_ROUTES+"/slitting", auth.Handler)

	api.Post("/", slittingController.CreateRecord)
	api.Get("/jobcard/:jobCardId", slittingController.GetByJobCard)
	api.Post("/:id/rolls", slittingController.AddRoll)
	api.Delete("/rolls/:rollId", slittingController.DeleteRoll)
	api.Delete("/:id", slittingController.DeleteRecord)
}
