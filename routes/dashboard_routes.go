package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	dashboardController := controllers.NewDashboardController(db)
	api := app.Group(config.MAIN_ROUTES+"/dashboard", auth.Handler)

	api.Get("/summary", dashboardController.GetSummary)
	api.Get("/activity", dashboardController.GetRecentActivity)
}
