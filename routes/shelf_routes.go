package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShelfRoutes(app *fiber.App, db *gorm.DB) {
	shelfController := controllers.NewShelfController(db)

	api := app.Group(config.MAIN_ROUTES+"/shelves", middleware.AuthMiddleware)
	api.Get("/", shelfController.GetAllShelves)
	api.Post("/", shelfController.CreateShelf)
	api.Get("/:id", shelfController.GetShelfByID)
	api.Put("/:id", shelfController.UpdateShelf)
	api.Delete("/:id", shelfController.DeleteShelf)
}
