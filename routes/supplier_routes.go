package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	supplierController := controllers.NewSupplierController(db)
	api := app.Group(config.MAIN_ROUTES+"/suppliers", auth.Handler)

	api.Get("/", supplierController.GetAllSuppliers)
	api.Post("/", supplierController.CreateSupplier)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}
