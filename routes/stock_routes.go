package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	stockController := controllers.NewStockController(db)
	api := app.Group(config.MAIN_ROUTES+"/stock", auth.Handler)

	api.Get("/", stockController.GetAvailableStock)
	api.Get("/:barcode", stockController.GetByBarcode)
	api.Post("/consume", stockController.Consume)
	api.Post("/restore", stockController.Restore)
}
