package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	reportController := controllers.NewReportController(db)
	api := app.Group(config.MAIN_ROUTES+"/reports", auth.Handler)

	api.Get("/stock/export", reportController.ExportStockRegister)
	api.Get("/batches/export", reportController.ExportBatchRegister)
	api.Get("/sales/export", reportController.ExportDeliveryOrders)
}
