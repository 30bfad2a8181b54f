package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	customerController := controllers.NewCustomerController(db)
	api := app.Group(config.MAIN_ROUTES+"/customers", auth.Handler)

	api.Get("/", customerController.GetAllCustomers)
	api.Post("/", customerController.CreateCustomer)
	api.Get("/:id", customerController.GetCustomerByID)
	api.Put("/:id", customerController.UpdateCustomer)
	api.Delete("/:id", customerController.DeleteCustomer)
}
