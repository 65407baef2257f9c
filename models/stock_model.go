package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type Stock struct {
	gorm.Model
	ProductID uint     `json:"product_id" gorm:"uniqueIndex"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	Type      string   `json:"type"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// History is the append-only ledger of quantity changes. Rows are keyed by
// snowflake id so they sort by creation time and are never updated or deleted.
type History struct {
	ID             types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	StockID        uint              `json:"stock_id"`
	Stock          *Stock            `json:"stock,omitempty" gorm:"foreignKey:StockID"`
	QuantityChange int               `json:"quantity_change"`
	Note           string            `json:"note"`
	CreatedAt      time.Time         `json:"created_at"`
	CreatedBy      int               `json:"created_by"`
}
