package database

import (
	"log"

	"inventory-app/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// RunSeeders inserts the default admin user and demo master data. Every
// seeder checks for an existing row first so restarts do not duplicate data.
func RunSeeders(db *gorm.DB) {
	seedAdminUser(db)
	seedCategories(db)
	seedWarehouses(db)
	seedRacks(db)
	seedShelves(db)
	seedSuppliers(db)
}

func seedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@inventory.local").First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	db.Create(&models.User{
		Name:     "Administrator",
		Email:    "admin@inventory.local",
		Password: string(hashed),
		Role:     "admin",
	})
}

func seedCategories(db *gorm.DB) {
	categories := []models.Category{
		{CategoryName: "Electronics"},
		{CategoryName: "Furniture"},
		{CategoryName: "Stationery"},
	}

	for _, c := range categories {
		var existing models.Category
		if err := db.Where("category_name = ?", c.CategoryName).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&c)
		}
	}
}

func seedWarehouses(db *gorm.DB) {
	warehouses := []models.Warehouse{
		{WarehouseName: "Main WH", Location: "Jakarta"},
		{WarehouseName: "Second WH", Location: "Bandung"},
	}

	for _, w := range warehouses {
		var existing models.Warehouse
		if err := db.Where("warehouse_name = ?", w.WarehouseName).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&w)
		}
	}
}

func seedRacks(db *gorm.DB) {
	for _, label := range []string{"R-01", "R-02", "R-03"} {
		var existing models.Rack
		if err := db.Where("rack_label = ?", label).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&models.Rack{RackLabel: label})
		}
	}
}

func seedShelves(db *gorm.DB) {
	for _, label := range []string{"S-01", "S-02", "S-03"} {
		var existing models.Shelf
		if err := db.Where("shelf_label = ?", label).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&models.Shelf{ShelfLabel: label})
		}
	}
}

func seedSuppliers(db *gorm.DB) {
	suppliers := []models.Supplier{
		{Name: "Acme Co.", ContactInfo: "acme@example.com", Address: "Jl. Industri No. 1"},
		{Name: "Global Parts", ContactInfo: "sales@globalparts.example.com", Address: "Jl. Raya Timur 45"},
	}

	for _, s := range suppliers {
		var existing models.Supplier
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&s)
		}
	}
}

// SeedDemoStocks gives every product without a stock row a starting quantity.
// Only meant for demo databases, so quantities are random.
func SeedDemoStocks(db *gorm.DB) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		log.Println("Failed to load products for stock seeding:", err)
		return
	}

	for _, p := range products {
		var existing models.Stock
		if err := db.Where("product_id = ?", p.ID).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&models.Stock{
				ProductID: p.ID,
				Quantity:  rand.Intn(50),
				Type:      "initial",
			})
		}
	}
}
