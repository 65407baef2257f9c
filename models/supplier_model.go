package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Address     string `json:"address"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
