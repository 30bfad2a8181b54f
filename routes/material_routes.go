package routes

import (
	"packflow/config"
	"packflow/controllers"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMaterialRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	materialController := controllers.NewMaterialController(db)
	api := app.Group(config.MAIN_ROUTES+"/materials", auth.Handler)

	api.Get("/batches", materialController.GetAllBatches)
	api.Post("/batches", materialController.CreateBatch)
	api.Get("/batches/unassigned", materialController.GetUnassignedItems)
	api.Post("/batches/finalize", materialController.FinalizeBatch)
	api.Get("/batches/:id", materialController.GetBatchByID)
	api.Post("/batches/:id/repair", materialController.RepairBatch)
	api.Post("/items", materialController.AddItem)
	api.Delete("/items/:id", materialController.DeleteItem)
}
