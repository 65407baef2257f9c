package models

import "gorm.io/gorm"

type Shelf struct {
	gorm.Model
	ShelfLabel string `json:"shelf_label"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
