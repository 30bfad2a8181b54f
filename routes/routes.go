package routes

import (
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	auth := middleware.NewAuthMiddleware(db)

	SetupAuthRoutes(app, db, auth)
	SetupUserRoutes(app, db, auth)
	SetupCustomerRoutes(app, db, auth)
	SetupSupplierRoutes(app, db, auth)
	SetupMaterialRoutes(app, db, auth)
	SetupStockRoutes(app, db, auth)
	SetupJobCardRoutes(app, db, auth)
	SetupSlittingRoutes(app, db, auth)
	SetupPrintingRoutes(app, db, auth)
	SetupCuttingRoutes(app, db, auth)
	SetupBundleRoutes(app, db, auth)
	SetupSalesRoutes(app, db, auth)
	SetupReturnRoutes(app, db, auth)
	SetupDashboardRoutes(app, db, auth)
	SetupReportRoutes(app, db, auth)
}
