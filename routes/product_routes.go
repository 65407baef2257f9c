package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/services/imagestore"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB, images imagestore.Store) {
	productController := controllers.NewProductController(db, images)
	historyController := controllers.NewHistoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Get("/", productController.GetAllProducts)
	api.Post("/", productController.CreateProduct)
	api.Post("/upload-excel", productController.CreateProductFromExcel)
	api.Get("/:id", productController.ShowDetails)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
	api.Get("/:id/details", productController.ShowDetails)
	api.Get("/:id/qrcode", productController.ShowQRCode)
	api.Get("/:id/history", historyController.GetProductHistory)
}
