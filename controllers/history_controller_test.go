package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"inventory-app/controllers/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newHistoryApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	historyController := NewHistoryController(db)

	app.Get("/history", historyController.GetAllHistory)
	app.Get("/history/export", historyController.ExportHistory)
	app.Get("/products/:id/history", historyController.GetProductHistory)

	return app
}

func TestGetAllHistoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	_, stock := seedProductWithStock(t, db, 10)
	app := newHistoryApp(db)

	if err := helpers.InsertStockHistory(db, stock.ID, 10, "initial stock", 1); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}
	// Spread the timestamps so the ordering is observable.
	time.Sleep(5 * time.Millisecond)
	if err := helpers.InsertStockHistory(db, stock.ID, -3, "stock reduced", 1); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/history", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	payload := decodeBody(t, resp)
	entries := payload["data"].([]interface{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(entries))
	}

	first := entries[0].(map[string]interface{})
	if first["note"] != "stock reduced" {
		t.Errorf("first entry note = %v, want stock reduced (newest first)", first["note"])
	}
	if first["quantity_change"] != float64(-3) {
		t.Errorf("first entry quantity_change = %v, want -3", first["quantity_change"])
	}

	// The related product rides along for display.
	stockData := first["stock"].(map[string]interface{})
	product := stockData["product"].(map[string]interface{})
	if product["product_code"] != "W-001" {
		t.Errorf("product_code = %v, want W-001", product["product_code"])
	}
}

func TestGetProductHistory(t *testing.T) {
	db := setupTestDB(t)
	product, stock := seedProductWithStock(t, db, 10)
	app := newHistoryApp(db)

	if err := helpers.InsertStockHistory(db, stock.ID, 10, "initial stock", 1); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := helpers.InsertStockHistory(db, stock.ID, -3, "stock reduced", 1); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/products/%d/history", product.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	payload := decodeBody(t, resp)
	entries := payload["data"].([]interface{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0].(map[string]interface{})
	if first["note"] != "stock reduced" {
		t.Errorf("first entry note = %v, want stock reduced (newest first)", first["note"])
	}
}

func TestGetProductHistoryNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := newHistoryApp(db)

	resp := doJSON(t, app, http.MethodGet, "/products/42/history", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestExportHistory(t *testing.T) {
	db := setupTestDB(t)
	_, stock := seedProductWithStock(t, db, 10)
	app := newHistoryApp(db)

	if err := helpers.InsertStockHistory(db, stock.ID, -2, "stock reduced", 1); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/history/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "stock-history-") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("response is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 data row, got %d rows", len(rows))
	}
	if rows[0][1] != "Product Code" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "W-001" || rows[1][2] != "Widget A" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[1][3] != "-2" {
		t.Errorf("quantity change cell = %q, want -2", rows[1][3])
	}
}
