package particular

import (
	"packflow/config"
	"packflow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupParticularRoutes(app *fiber.App, db *gorm.DB, auth *middleware.AuthMiddlewareStruct) {
	handler := NewParticularHandler(db)
	api := app.Group(config.MAIN_ROUTES+"/particulars", auth.Handler)

	api.Get("/", handler.GetAllParticulars)
	api.Post("/", handler.CreateParticular)
	api.Get("/:id", handler.GetParticularByID)
	api.Put("/:id", handler.UpdateParticular)
	api.Delete("/:id", handler.DeleteParticular)
}
