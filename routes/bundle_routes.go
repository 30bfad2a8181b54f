package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBundleRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	bundleController := controllers.NewBundleController(db)
	api := app.Group(config.MAIN_ROUTES+"/bundles", auth.Handler)

	api.Get("/", bundleController.GetAllBundles)
	api.Get("/unassigned", bundleController.GetUnassignedItems)
	api.Post("/finalize", bundleController.FinalizeBundle)
	api.Get("/:id", bundleController.GetBundleByID)
	api.Post("/:id/repair", bundleController.RepairBundle)
	api.Post("/items", bundleController.CreateItem)
	api.Delete("/items/:id", bundleController.DeleteCompleteItem)
}
