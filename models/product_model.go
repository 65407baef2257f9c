package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	ProductCode string `json:"product_code" gorm:"size:255;unique"`
	ProductName string `json:"product_name"`

	CategoryID uint       `json:"category_id"`
	Category   *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	RackID     uint       `json:"rack_id"`
	Rack       *Rack      `json:"rack,omitempty" gorm:"foreignKey:RackID"`
	ShelfID    uint       `json:"shelf_id"`
	Shelf      *Shelf     `json:"shelf,omitempty" gorm:"foreignKey:ShelfID"`
	SupplierID uint       `json:"supplier_id"`
	Supplier   *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	WarehouseID uint      `json:"warehouse_id"`
	Warehouse  *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`

	// Denormalized copy of the warehouse name, resolved at write time.
	WarehouseName string `json:"warehouse_name"`

	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"type:decimal(15,2)"`
	SalePrice     decimal.Decimal `json:"sale_price" gorm:"type:decimal(15,2)"`
	DateIn        time.Time       `json:"date_in" gorm:"type:date"`
	ImageURL      string          `json:"image_url"`

	Stock *Stock `json:"stock,omitempty" gorm:"foreignKey:ProductID"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
