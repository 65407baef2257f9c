package controllers

import (
	"inventory-app/config"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var productCount, supplierCount, warehouseCount, categoryCount int64
	c.DB.Model(&models.Product{}).Count(&productCount)
	c.DB.Model(&models.Supplier{}).Count(&supplierCount)
	c.DB.Model(&models.Warehouse{}).Count(&warehouseCount)
	c.DB.Model(&models.Category{}).Count(&categoryCount)

	var lowStocks []models.Stock
	if err := c.DB.
		Preload("Product").
		Where("quantity < ?", config.LowStockThreshold).
		Find(&lowStocks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard data",
		"data": fiber.Map{
			"total_products":   productCount,
			"total_suppliers":  supplierCount,
			"total_warehouses": warehouseCount,
			"total_categories": categoryCount,
			"low_stocks":       lowStocks,
		},
	})
}

// GetChartData feeds the stock-level chart: one label and quantity per product.
func (c *DashboardController) GetChartData(ctx *fiber.Ctx) error {
	var stocks []models.Stock
	if err := c.DB.Preload("Product").Find(&stocks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	labels := []string{}
	quantities := []int{}
	for _, s := range stocks {
		if s.Product == nil {
			continue
		}
		labels = append(labels, s.Product.ProductName)
		quantities = append(quantities, s.Quantity)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Chart data",
		"data": fiber.Map{
			"labels":     labels,
			"quantities": quantities,
		},
	})
}
