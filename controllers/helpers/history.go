package helpers

import (
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

// InsertStockHistory appends a quantity-change record to the stock ledger.
func InsertStockHistory(db *gorm.DB, stockID uint, quantityChange int, note string, actor int) error {
	history := models.History{
		ID:             types.SnowflakeID(idgen.GenerateID()),
		StockID:        stockID,
		QuantityChange: quantityChange,
		Note:           note,
		CreatedAt:      time.Now(),
		CreatedBy:      actor,
	}

	if err := db.Create(&history).Error; err != nil {
		return err
	}

	return nil
}
