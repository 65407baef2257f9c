package controllers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inventory-app/controllers/helpers"
	"inventory-app/models"
	"inventory-app/services/imagestore"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB     *gorm.DB
	Images imagestore.Store
}

func NewProductController(db *gorm.DB, images imagestore.Store) *ProductController {
	return &ProductController{DB: db, Images: images}
}

const maxImageSize = 2048 * 1024

var allowedImageExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
}

func parseUintField(value, field string, errs map[string]string) uint {
	if strings.TrimSpace(value) == "" {
		errs[field] = fmt.Sprintf("The %s field is required", field)
		return 0
	}

	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || id == 0 {
		errs[field] = fmt.Sprintf("The %s field must be a valid id", field)
		return 0
	}

	return uint(id)
}

func parsePriceField(value, field string, errs map[string]string) decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		errs[field] = fmt.Sprintf("The %s field is required", field)
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		errs[field] = fmt.Sprintf("The %s field must be a number", field)
		return decimal.Zero
	}

	if d.IsNegative() {
		errs[field] = fmt.Sprintf("The %s field may not be negative", field)
	}

	return d
}

// checkProductRefs verifies every referenced row exists and the product code
// is free (excludeID skips the product being updated). It returns the resolved
// warehouse so callers can denormalize its name.
func checkProductRefs(db *gorm.DB, categoryID, warehouseID, rackID, shelfID, supplierID uint, code string, excludeID uint) (models.Warehouse, map[string]string) {
	errs := make(map[string]string)

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		errs["category_id"] = "The selected category_id is invalid"
	}
	var warehouse models.Warehouse
	if err := db.First(&warehouse, warehouseID).Error; err != nil {
		errs["warehouse_id"] = "The selected warehouse_id is invalid"
	}
	var rack models.Rack
	if err := db.First(&rack, rackID).Error; err != nil {
		errs["rack_id"] = "The selected rack_id is invalid"
	}
	var shelf models.Shelf
	if err := db.First(&shelf, shelfID).Error; err != nil {
		errs["shelf_id"] = "The selected shelf_id is invalid"
	}
	var supplier models.Supplier
	if err := db.First(&supplier, supplierID).Error; err != nil {
		errs["supplier_id"] = "The selected supplier_id is invalid"
	}

	var existing models.Product
	if err := db.Where("product_code = ? AND id <> ?", code, excludeID).First(&existing).Error; err == nil {
		errs["product_code"] = "The product_code has already been taken"
	}

	return warehouse, errs
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Preload("Supplier").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Products found", "data": products})
}

// CreateProduct accepts a multipart form so the product attributes and the
// optional image arrive in one request.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	errs := make(map[string]string)

	code := strings.TrimSpace(ctx.FormValue("product_code"))
	if code == "" {
		errs["product_code"] = "The product_code field is required"
	} else if len(code) > 255 {
		errs["product_code"] = "The product_code field may not be greater than 255 characters"
	}

	name := strings.TrimSpace(ctx.FormValue("product_name"))
	if name == "" {
		errs["product_name"] = "The product_name field is required"
	}

	categoryID := parseUintField(ctx.FormValue("category_id"), "category_id", errs)
	warehouseID := parseUintField(ctx.FormValue("warehouse_id"), "warehouse_id", errs)
	rackID := parseUintField(ctx.FormValue("rack_id"), "rack_id", errs)
	shelfID := parseUintField(ctx.FormValue("shelf_id"), "shelf_id", errs)
	supplierID := parseUintField(ctx.FormValue("supplier_id"), "supplier_id", errs)

	purchasePrice := parsePriceField(ctx.FormValue("purchase_price"), "purchase_price", errs)
	salePrice := parsePriceField(ctx.FormValue("sale_price"), "sale_price", errs)

	var dateIn time.Time
	dateStr := strings.TrimSpace(ctx.FormValue("product_date"))
	if dateStr == "" {
		errs["product_date"] = "The product_date field is required"
	} else {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			errs["product_date"] = "The product_date field must be a valid date (YYYY-MM-DD)"
		} else {
			dateIn = parsed
		}
	}

	file, fileErr := ctx.FormFile("image")
	if fileErr != nil {
		file = nil
	}
	if file != nil {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
		if !allowedImageExtensions[ext] {
			errs["image"] = "The image must be a file of type: jpeg, png, jpg, gif"
		} else if file.Size > maxImageSize {
			errs["image"] = "The image may not be greater than 2048 kilobytes"
		}
	}

	if len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errs})
	}

	// Referential and uniqueness checks run before the upload so a rejected
	// create never leaves an orphan asset behind.
	if _, refErrs := checkProductRefs(c.DB, categoryID, warehouseID, rackID, shelfID, supplierID, code, 0); len(refErrs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": refErrs})
	}

	// Upload next so a slow asset host never holds a database transaction
	// open. A failed upload is tolerated: the product is saved without an
	// image and the response says so.
	imageURL := ""
	imageSkipped := false
	if file != nil {
		src, err := file.Open()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded image"})
		}

		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(file.Filename))
		}

		url, err := c.Images.Upload(ctx.Context(), file.Filename, contentType, src)
		src.Close()
		if err != nil {
			log.Println("Image upload failed, saving product without image:", err)
			imageSkipped = true
		} else {
			imageURL = url
		}
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	// Re-run the checks in the same transaction as the insert so a
	// concurrent write cannot slip between check and create.
	warehouse, refErrs := checkProductRefs(tx, categoryID, warehouseID, rackID, shelfID, supplierID, code, 0)
	if len(refErrs) > 0 {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": refErrs})
	}

	product := models.Product{
		ProductCode:   code,
		ProductName:   name,
		CategoryID:    categoryID,
		WarehouseID:   warehouseID,
		WarehouseName: warehouse.WarehouseName,
		RackID:        rackID,
		ShelfID:       shelfID,
		SupplierID:    supplierID,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		DateIn:        dateIn,
		ImageURL:      imageURL,
		CreatedBy:     actorID(ctx),
	}

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	stock := models.Stock{
		ProductID: product.ID,
		Quantity:  0,
		Type:      "initial",
		CreatedBy: actorID(ctx),
	}
	if err := tx.Create(&stock).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	message := "Product added successfully!"
	if imageSkipped {
		message = "Product added successfully, but the image upload failed and was skipped"
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": message, "data": product})
}

type productUpdateInput struct {
	ProductCode   string `json:"product_code" validate:"required,max=255"`
	ProductName   string `json:"product_name" validate:"required,max=255"`
	CategoryID    uint   `json:"category_id" validate:"required"`
	WarehouseID   uint   `json:"warehouse_id" validate:"required"`
	SupplierID    uint   `json:"supplier_id" validate:"required"`
	RackID        uint   `json:"rack_id" validate:"required"`
	ShelfID       uint   `json:"shelf_id" validate:"required"`
	PurchasePrice string `json:"purchase_price" validate:"required"`
	SalePrice     string `json:"sale_price" validate:"required"`
	DateIn        string `json:"date_in" validate:"required"`
}

// UpdateProduct replaces the mutable fields; the image is never touched here.
func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
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

	var input productUpdateInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": formatValidationErrors(err)})
	}

	errs := make(map[string]string)
	purchasePrice := parsePriceField(input.PurchasePrice, "purchase_price", errs)
	salePrice := parsePriceField(input.SalePrice, "sale_price", errs)

	var dateIn time.Time
	parsed, err := time.Parse("2006-01-02", input.DateIn)
	if err != nil {
		errs["date_in"] = "The date_in field must be a valid date (YYYY-MM-DD)"
	} else {
		dateIn = parsed
	}

	if len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errs})
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	warehouse, refErrs := checkProductRefs(tx, input.CategoryID, input.WarehouseID, input.RackID, input.ShelfID, input.SupplierID, input.ProductCode, product.ID)
	if len(refErrs) > 0 {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": refErrs})
	}

	product.ProductCode = input.ProductCode
	product.ProductName = input.ProductName
	product.CategoryID = input.CategoryID
	product.WarehouseID = input.WarehouseID
	product.WarehouseName = warehouse.WarehouseName
	product.RackID = input.RackID
	product.ShelfID = input.ShelfID
	product.SupplierID = input.SupplierID
	product.PurchasePrice = purchasePrice
	product.SalePrice = salePrice
	product.DateIn = dateIn
	product.UpdatedBy = actorID(ctx)

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product updated successfully!", "data": product})
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
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

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	product.DeletedBy = actorID(ctx)
	if err := tx.Select("deleted_by").Where("id = ?", id).Updates(&product).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product deleted successfully!", "data": product})
}

// ShowDetails returns the product with its relations eagerly loaded. Deleted
// relations come back null; the caller renders them as N/A.
func (c *ProductController) ShowDetails(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.
		Preload("Category").
		Preload("Warehouse").
		Preload("Stock").
		Preload("Supplier").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product found", "data": product})
}

// ShowQRCode encodes the product snapshot into a 300px QR PNG.
func (c *ProductController) ShowQRCode(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.
		Preload("Warehouse").
		Preload("Stock").
		Preload("Supplier").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var category *models.Category
	var found models.Category
	if err := c.DB.First(&found, product.CategoryID).Error; err == nil {
		category = &found
	}

	label := helpers.BuildProductLabel(&product, category)

	png, err := qrcode.Encode(label, qrcode.Medium, 300)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "image/png")
	return ctx.Send(png)
}

type ProductUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateProductFromExcel bulk-imports products. Expected columns:
// PRODUCT_CODE, PRODUCT_NAME, CATEGORY, WAREHOUSE, RACK, SHELF, SUPPLIER,
// PURCHASE_PRICE, SALE_PRICE, DATE (header row first).
func (c *ProductController) CreateProductFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := ProductUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := actorID(ctx)

	// Caches so reference rows are resolved once per name.
	categoryCache := make(map[string]uint)
	warehouseCache := make(map[string]*models.Warehouse)
	rackCache := make(map[string]uint)
	shelfCache := make(map[string]uint)
	supplierCache := make(map[string]uint)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 10 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 10)", rowNum))
			continue
		}

		code := strings.ToUpper(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		categoryName := strings.TrimSpace(row[2])
		warehouseName := strings.TrimSpace(row[3])
		rackLabel := strings.TrimSpace(row[4])
		shelfLabel := strings.TrimSpace(row[5])
		supplierName := strings.TrimSpace(row[6])

		if code == "" || name == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: PRODUCT_CODE and PRODUCT_NAME are required", rowNum))
			continue
		}

		categoryID, ok := categoryCache[categoryName]
		if !ok {
			var category models.Category
			if err := tx.Where("category_name = ?", categoryName).First(&category).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Category '%s' not found", rowNum, categoryName))
				continue
			}
			categoryID = category.ID
			categoryCache[categoryName] = categoryID
		}

		warehouse, ok := warehouseCache[warehouseName]
		if !ok {
			var found models.Warehouse
			if err := tx.Where("warehouse_name = ?", warehouseName).First(&found).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Warehouse '%s' not found", rowNum, warehouseName))
				continue
			}
			warehouse = &found
			warehouseCache[warehouseName] = warehouse
		}

		rackID, ok := rackCache[rackLabel]
		if !ok {
			var rack models.Rack
			if err := tx.Where("rack_label = ?", rackLabel).First(&rack).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Rack '%s' not found", rowNum, rackLabel))
				continue
			}
			rackID = rack.ID
			rackCache[rackLabel] = rackID
		}

		shelfID, ok := shelfCache[shelfLabel]
		if !ok {
			var shelf models.Shelf
			if err := tx.Where("shelf_label = ?", shelfLabel).First(&shelf).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Shelf '%s' not found", rowNum, shelfLabel))
				continue
			}
			shelfID = shelf.ID
			shelfCache[shelfLabel] = shelfID
		}

		supplierID, ok := supplierCache[supplierName]
		if !ok {
			var supplier models.Supplier
			if err := tx.Where("name = ?", supplierName).First(&supplier).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Supplier '%s' not found", rowNum, supplierName))
				continue
			}
			supplierID = supplier.ID
			supplierCache[supplierName] = supplierID
		}

		var existing models.Product
		if err := tx.Where("product_code = ?", code).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, code)
			continue
		}

		purchasePrice, err := decimal.NewFromString(strings.TrimSpace(row[7]))
		if err != nil || purchasePrice.IsNegative() {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid purchase price '%s'", rowNum, row[7]))
			continue
		}

		salePrice, err := decimal.NewFromString(strings.TrimSpace(row[8]))
		if err != nil || salePrice.IsNegative() {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid sale price '%s'", rowNum, row[8]))
			continue
		}

		dateIn, err := time.Parse("2006-01-02", strings.TrimSpace(row[9]))
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid date '%s' (expected YYYY-MM-DD)", rowNum, row[9]))
			continue
		}

		product := models.Product{
			ProductCode:   code,
			ProductName:   name,
			CategoryID:    categoryID,
			WarehouseID:   warehouse.ID,
			WarehouseName: warehouse.WarehouseName,
			RackID:        rackID,
			ShelfID:       shelfID,
			SupplierID:    supplierID,
			PurchasePrice: purchasePrice,
			SalePrice:     salePrice,
			DateIn:        dateIn,
			CreatedBy:     userID,
		}

		if err := tx.Create(&product).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create product - %s", rowNum, err.Error()))
			continue
		}

		if err := tx.Create(&models.Stock{ProductID: product.ID, Type: "initial", CreatedBy: userID}).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create stock row - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}
