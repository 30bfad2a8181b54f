package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCuttingRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	cuttingController := controllers.NewCuttingController(db)
	api := app.Group(config.MAIN_ROUTES+"/cutting", auth.Handler)

	api.Post("/", cuttingController.CreateRecord)
	api.Get("/jobcard/:jobCardId", cuttingController.GetByJobCard)
	api.Post("/:id/rolls", cuttingController.AddRoll)
	api.Delete("/rolls/:rollId", cuttingController.DeleteRoll)
	api.Delete("/:id", cuttingController.DeleteRecord)
}
