package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Post("/refresh", authController.Refresh)

	protected := app.Group(config.MAIN_ROUTES+"/auth", auth.Handler)
	protected.Get("/logout", authController.Logout)
	protected.Get("/isLoggedIn", authController.IsLoggedIn)
}
