package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	CategoryName string `json:"category_name"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
