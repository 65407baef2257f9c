package helpers

import (
	"fmt"
	"strings"

	"inventory-app/models"
	"inventory-app/utils"
)

// BuildProductLabel composes the text block encoded into a product's QR
// label. The product must be loaded with warehouse, stock and supplier;
// relations deleted out from under the product degrade to "N/A" (stock to
// "0") instead of failing.
func BuildProductLabel(product *models.Product, category *models.Category) string {
	categoryName := "N/A"
	if category != nil {
		categoryName = category.CategoryName
	}

	warehouseName := "N/A"
	if product.Warehouse != nil {
		warehouseName = product.Warehouse.WarehouseName
	}

	stockQuantity := "0"
	if product.Stock != nil {
		stockQuantity = fmt.Sprintf("%d", product.Stock.Quantity)
	}

	supplierName := "N/A"
	if product.Supplier != nil {
		supplierName = product.Supplier.Name
	}

	lines := []string{
		"Product Name: " + product.ProductName,
		"Product Code: " + product.ProductCode,
		"Category: " + categoryName,
		"Warehouse: " + warehouseName,
		"Stock Quantity: " + stockQuantity,
		"Purchase Price: " + utils.FormatRupiah(product.PurchasePrice),
		"Sale Price: " + utils.FormatRupiah(product.SalePrice),
		"Date Added: " + product.CreatedAt.Format("02 Jan 2006"),
		"Supplier: " + supplierName,
	}

	return strings.Join(lines, "\n")
}
