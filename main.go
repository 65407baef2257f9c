package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"
	"inventory-app/services/imagestore"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	images := imagestore.NewFromConfig()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupRackRoutes(app, db)
	routes.SetupShelfRoutes(app, db)
	routes.SetupSupplierRoutes(app, db)
	routes.SetupProductRoutes(app, db, images)
	routes.SetupStockRoutes(app, db)
	routes.SetupHistoryRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
