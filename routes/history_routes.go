package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHistoryRoutes(app *fiber.App, db *gorm.DB) {
	historyController := controllers.NewHistoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/history", middleware.AuthMiddleware)
	api.Get("/", historyController.GetAllHistory)
	api.Get("/export", historyController.ExportHistory)
}
