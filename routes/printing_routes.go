package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPrintingRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	printingController := controllers.NewPrintingController(db)
	api := app.Group(config.MAIN_ROUTES+"/printing", auth.Handler)

	api.Post("/", printingController.CreateRecord)
	api.Get("/jobcard/:jobCardId", printingController.GetByJobCard)
	api.Delete("/packs/:packId", printingController.DeletePack)
}
