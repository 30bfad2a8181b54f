package main

import (
	"fmt"
	"log"

	"packflow/config"
	"packflow/controllers/idgen"
	"packflow/database"
	"packflow/master/particular"
	"packflow/middleware"
	"packflow/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)
	particular.SeedParticulars(db)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(middleware.Timeout)

	config.SetupCORS(app)

	routes.SetupRoutes(app, db)
	particular.SetupParticularRoutes(app, db, middleware.NewAuthMiddleware(db))

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
