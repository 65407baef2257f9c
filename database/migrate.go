package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Warehouse{},
		&models.Rack{},
		&models.Shelf{},
		&models.Supplier{},
		&models.Product{},
		&models.Stock{},
		&models.History{},
	)
}
