package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRackRoutes(app *fiber.App, db *gorm.DB) {
	rackController := controllers.NewRackController(db)

	api := app.Group(config.MAIN_ROUTES+"/racks", middleware.AuthMiddleware)
	api.Get("/", rackController.GetAllRacks)
	api.Post("/", rackController.CreateRack)
	api.Get("/:id", rackController.GetRackByID)
	api.Put("/:id", rackController.UpdateRack)
	api.Delete("/:id", rackController.DeleteRack)
}
