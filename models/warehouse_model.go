package models

import "gorm.io/gorm"

type Warehouse struct {
	gorm.Model
	WarehouseName string `json:"warehouse_name"`
	Location      string `json:"location"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
