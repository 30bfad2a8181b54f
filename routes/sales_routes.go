package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSalesRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	salesController := controllers.NewSalesController(db)
	api := app.Group(config.MAIN_ROUTES+"/sales", auth.Handler)

	api.Get("/", salesController.GetAllDeliveryOrders)
	api.Post("/", salesController.CreateDeliveryOrder)
	api.Get("/validate/:barcode", salesController.ValidateBarcode)
	api.Get("/:id", salesController.GetDeliveryOrderByID)
	api.Delete("/:id", salesController.DeleteDeliveryOrder)
}
