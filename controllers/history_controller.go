package controllers

import (
	"errors"
	"fmt"
	"time"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

func (c *HistoryController) GetAllHistory(ctx *fiber.Ctx) error {
	var histories []models.History
	if err := c.DB.
		Preload("Stock").
		Preload("Stock.Product").
		Order("created_at DESC").
		Find(&histories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": histories})
}

// GetProductHistory returns the ledger entries of one product, newest first.
// A product that never had stock movements yields an empty list.
func (c *HistoryController) GetProductHistory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	histories := []models.History{}
	var stock models.Stock
	if err := c.DB.Where("product_id = ?", product.ID).First(&stock).Error; err == nil {
		if err := c.DB.
			Where("stock_id = ?", stock.ID).
			Order("created_at DESC").
			Find(&histories).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": histories})
}

// ExportHistory streams the full ledger as an xlsx download.
func (c *HistoryController) ExportHistory(ctx *fiber.Ctx) error {
	var histories []models.History
	if err := c.DB.
		Preload("Stock").
		Preload("Stock.Product").
		Order("created_at DESC").
		Find(&histories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Product Code", "Product Name", "Quantity Change", "Note", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, h := range histories {
		row := i + 2
		productCode := ""
		productName := ""
		if h.Stock != nil && h.Stock.Product != nil {
			productCode = h.Stock.Product.ProductCode
			productName = h.Stock.Product.ProductName
		}

		values := []interface{}{
			int64(h.ID),
			productCode,
			productName,
			h.QuantityChange,
			h.Note,
			h.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("stock-history-%s.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
