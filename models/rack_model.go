package models

import "gorm.io/gorm"

type Rack struct {
	gorm.Model
	RackLabel string `json:"rack_label"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
