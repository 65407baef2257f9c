package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var idgenOnce sync.Once

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	idgenOnce.Do(idgen.Init)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedReferenceData creates one row per reference entity and returns them.
func seedReferenceData(t *testing.T, db *gorm.DB) (models.Category, models.Warehouse, models.Rack, models.Shelf, models.Supplier) {
	t.Helper()

	category := models.Category{CategoryName: "Electronics"}
	warehouse := models.Warehouse{WarehouseName: "Main WH", Location: "Jakarta"}
	rack := models.Rack{RackLabel: "R-01"}
	shelf := models.Shelf{ShelfLabel: "S-01"}
	supplier := models.Supplier{Name: "Acme Co.", ContactInfo: "acme@example.com"}

	for _, m := range []interface{}{&category, &warehouse, &rack, &shelf, &supplier} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("failed to seed reference data: %v", err)
		}
	}

	return category, warehouse, rack, shelf, supplier
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = buf
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, target, err)
	}
	return resp
}

func doMultipart(t *testing.T, app *fiber.App, target string, fields map[string]string, fileField, fileName string, fileContent []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request POST %s failed: %v", target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return payload
}
