package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Warehouse, rack, shelf and supplier share the category CRUD shape, so one
// table drives them all.
type referenceKind struct {
	name     string
	field    string
	create   map[string]interface{}
	update   map[string]interface{}
	register func(app *fiber.App, db *gorm.DB)
}

func referenceKinds() []referenceKind {
	return []referenceKind{
		{
			name:   "warehouse",
			field:  "warehouse_name",
			create: map[string]interface{}{"warehouse_name": "Main WH", "location": "Jakarta"},
			update: map[string]interface{}{"warehouse_name": "Second WH", "location": "Bandung"},
			register: func(app *fiber.App, db *gorm.DB) {
				c := NewWarehouseController(db)
				app.Get("/items", c.GetAllWarehouses)
				app.Post("/items", c.CreateWarehouse)
				app.Get("/items/:id", c.GetWarehouseByID)
				app.Put("/items/:id", c.UpdateWarehouse)
				app.Delete("/items/:id", c.DeleteWarehouse)
			},
		},
		{
			name:   "rack",
			field:  "rack_label",
			create: map[string]interface{}{"rack_label": "R-01"},
			update: map[string]interface{}{"rack_label": "R-02"},
			register: func(app *fiber.App, db *gorm.DB) {
				c := NewRackController(db)
				app.Get("/items", c.GetAllRacks)
				app.Post("/items", c.CreateRack)
				app.Get("/items/:id", c.GetRackByID)
				app.Put("/items/:id", c.UpdateRack)
				app.Delete("/items/:id", c.DeleteRack)
			},
		},
		{
			name:   "shelf",
			field:  "shelf_label",
			create: map[string]interface{}{"shelf_label": "S-01"},
			update: map[string]interface{}{"shelf_label": "S-02"},
			register: func(app *fiber.App, db *gorm.DB) {
				c := NewShelfController(db)
				app.Get("/items", c.GetAllShelves)
				app.Post("/items", c.CreateShelf)
				app.Get("/items/:id", c.GetShelfByID)
				app.Put("/items/:id", c.UpdateShelf)
				app.Delete("/items/:id", c.DeleteShelf)
			},
		},
		{
			name:   "supplier",
			field:  "name",
			create: map[string]interface{}{"name": "Acme Co.", "contact_info": "acme@example.com", "address": "Jl. Sudirman 1"},
			update: map[string]interface{}{"name": "Acme Ltd.", "contact_info": "sales@acme.example", "address": "Jl. Thamrin 2"},
			register: func(app *fiber.App, db *gorm.DB) {
				c := NewSupplierController(db)
				app.Get("/items", c.GetAllSuppliers)
				app.Post("/items", c.CreateSupplier)
				app.Get("/items/:id", c.GetSupplierByID)
				app.Put("/items/:id", c.UpdateSupplier)
				app.Delete("/items/:id", c.DeleteSupplier)
			},
		},
	}
}

func TestReferenceEntityCRUD(t *testing.T) {
	for _, kind := range referenceKinds() {
		t.Run(kind.name, func(t *testing.T) {
			db := setupTestDB(t)
			app := fiber.New()
			kind.register(app, db)

			resp := doJSON(t, app, http.MethodPost, "/items", kind.create)
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("expected status 201, got %d", resp.StatusCode)
			}

			payload := decodeBody(t, resp)
			data := payload["data"].(map[string]interface{})
			id := int(data["ID"].(float64))
			if data[kind.field] != kind.create[kind.field] {
				t.Errorf("%s = %v, want %v", kind.field, data[kind.field], kind.create[kind.field])
			}

			resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/items/%d", id), nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}
			resp.Body.Close()

			resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/items/%d", id), kind.update)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}

			payload = decodeBody(t, resp)
			data = payload["data"].(map[string]interface{})
			if data[kind.field] != kind.update[kind.field] {
				t.Errorf("after update %s = %v, want %v", kind.field, data[kind.field], kind.update[kind.field])
			}

			resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}
			resp.Body.Close()

			resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/items/%d", id), nil)
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("expected status 404 after delete, got %d", resp.StatusCode)
			}
			resp.Body.Close()

			resp = doJSON(t, app, http.MethodGet, "/items", nil)
			payload = decodeBody(t, resp)
			if items := payload["data"].([]interface{}); len(items) != 0 {
				t.Errorf("expected empty list after delete, got %d entries", len(items))
			}
		})
	}
}

func TestReferenceEntityValidation(t *testing.T) {
	for _, kind := range referenceKinds() {
		t.Run(kind.name, func(t *testing.T) {
			db := setupTestDB(t)
			app := fiber.New()
			kind.register(app, db)

			resp := doJSON(t, app, http.MethodPost, "/items", map[string]interface{}{kind.field: ""})
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}

			payload := decodeBody(t, resp)
			errs := payload["errors"].(map[string]interface{})
			want := fmt.Sprintf("The %s field is required", kind.field)
			if errs[kind.field] != want {
				t.Errorf("%s error = %v, want %q", kind.field, errs[kind.field], want)
			}
		})
	}
}

func TestReferenceEntityNotFound(t *testing.T) {
	for _, kind := range referenceKinds() {
		t.Run(kind.name, func(t *testing.T) {
			db := setupTestDB(t)
			app := fiber.New()
			kind.register(app, db)

			for _, req := range []struct {
				method string
				body   map[string]interface{}
			}{
				{http.MethodGet, nil},
				{http.MethodPut, kind.update},
				{http.MethodDelete, nil},
			} {
				resp := doJSON(t, app, req.method, "/items/42", req.body)
				if resp.StatusCode != http.StatusNotFound {
					t.Errorf("%s: expected status 404, got %d", req.method, resp.StatusCode)
				}
				resp.Body.Close()
			}
		})
	}
}
