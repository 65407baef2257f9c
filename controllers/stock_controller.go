package controllers

import (
	"errors"

	"inventory-app/config"
	"inventory-app/controllers/helpers"
	"inventory-app/models"
	"inventory-app/services/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

func (c *StockController) GetAllStocks(ctx *fiber.Ctx) error {
	var stocks []models.Stock
	if err := c.DB.Preload("Product").Find(&stocks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stocks found", "data": stocks})
}

func (c *StockController) GetStockByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var stock models.Stock
	if err := c.DB.Preload("Product").First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": stock})
}

type stockInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	Type      string `json:"type" validate:"required,max=255"`
}

func (c *StockController) CreateStock(ctx *fiber.Ctx) error {
	var input stockInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": formatValidationErrors(err)})
	}

	if input.Quantity < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": fiber.Map{
			"quantity": "The quantity field may not be negative",
		}})
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	var product models.Product
	if err := tx.First(&product, input.ProductID).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var existing models.Stock
	if err := tx.Where("product_id = ?", input.ProductID).First(&existing).Error; err == nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": fiber.Map{
			"product_id": "The product already has a stock record",
		}})
	}

	stock := models.Stock{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		CreatedBy: actorID(ctx),
	}

	if err := tx.Create(&stock).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Quantity != 0 {
		if err := helpers.InsertStockHistory(tx, stock.ID, input.Quantity, "initial stock", actorID(ctx)); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Stock added successfully!", "data": stock})
}

type reduceStockInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ReduceStock decreases the current quantity and appends a ledger entry in
// one transaction. The low-stock alert goes out after the commit so mail
// problems never roll back the mutation.
func (c *StockController) ReduceStock(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input reduceStockInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": formatValidationErrors(err)})
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	var stock models.Stock
	if err := tx.Preload("Product").First(&stock, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Quantity > stock.Quantity {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Insufficient stock",
		})
	}

	stock.Quantity -= input.Quantity
	stock.Type = "out"
	stock.UpdatedBy = actorID(ctx)

	if err := tx.Save(&stock).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := helpers.InsertStockHistory(tx, stock.ID, -input.Quantity, "stock reduced", actorID(ctx)); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if stock.Quantity < config.LowStockThreshold && stock.Product != nil {
		go mailer.SendLowStockAlert(stock.Product.ProductName, stock.Product.ProductCode, stock.Quantity)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock reduced successfully!", "data": stock})
}
