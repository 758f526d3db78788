package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/router"
)

const testAPIKey = "test-admin-key"

type adminEnv struct {
	users    *fakeUsers
	products *fakeProducts
	engine   *gin.Engine
}

func newAdminEnv(t *testing.T) *adminEnv {
	t.Helper()
	e := &adminEnv{
		users:    newFakeUsers(),
		products: newFakeProducts(testProducts()...),
	}
	log := zap.NewNop()
	h := handler.NewAdminHandler(e.products, e.users, log, response.Writer{})
	e.engine = router.NewAdminEngine(log, testAPIKey, h)
	return e
}

func (e *adminEnv) do(t *testing.T, method, path, key string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func productBody(name, sku string, price float64) map[string]any {
	return map[string]any{"name": name, "sku": sku, "price": price}
}

func TestAdminRequiresAPIKey(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodGet, "/admin/users", "", nil)
	wantStatus(t, w, http.StatusUnauthorized)
	if decode(t, w)["message"] != "Invalid or missing API key" {
		t.Errorf("body: %s", w.Body.String())
	}

	wantStatus(t, e.do(t, http.MethodGet, "/admin/users", "wrong-key", nil), http.StatusUnauthorized)
}

func TestAdminCreateProduct(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodPost, "/admin/products", testAPIKey, map[string]any{
		"name": "USB Hub", "sku": "hub-7p", "price": 29.99, "stock": 12, "category": "accessories",
	})
	wantStatus(t, w, http.StatusCreated)
	body := decode(t, w)
	if body["message"] != "Product created successfully" {
		t.Errorf("message: %v", body["message"])
	}
	p := body["product"].(map[string]any)
	if p["sku"] != "HUB-7P" {
		t.Errorf("sku must be upper-cased: %v", p["sku"])
	}
	if p["isActive"] != true {
		t.Errorf("new products default to active: %v", p)
	}
	id := p["id"].(string)
	stored, _ := e.products.FindByID(id)
	if stored == nil || stored.Stock != 12 {
		t.Errorf("stored: %+v", stored)
	}
}

func TestAdminCreateProductValidation(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodPost, "/admin/products", testAPIKey, map[string]any{"name": "X"})
	wantStatus(t, w, http.StatusBadRequest)
	body := decode(t, w)
	if body["message"] != "Validation error" {
		t.Errorf("message: %v", body["message"])
	}
	if errs, ok := body["errors"].([]any); !ok || len(errs) < 2 {
		t.Errorf("errors: %v", body["errors"])
	}
}

func TestAdminCreateProductDuplicateSKU(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodPost, "/admin/products", testAPIKey, productBody("Another Laptop", "LAPTOP-PRO-15", 999))
	wantStatus(t, w, http.StatusConflict)
	if decode(t, w)["message"] != "A product with this SKU already exists" {
		t.Errorf("body: %s", w.Body.String())
	}
}

func TestAdminUpdateProduct(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodPut, "/admin/products/p2", testAPIKey, map[string]any{
		"name": "Wireless Mouse v2", "sku": "MOUSE-WL-01", "price": 59.0, "stock": 8,
	})
	wantStatus(t, w, http.StatusOK)
	if decode(t, w)["message"] != "Product updated successfully" {
		t.Errorf("body: %s", w.Body.String())
	}
	stored, _ := e.products.FindByID("p2")
	if stored.Name != "Wireless Mouse v2" || stored.Price != 59.0 {
		t.Errorf("stored: %+v", stored)
	}

	wantStatus(t, e.do(t, http.MethodPut, "/admin/products/missing", testAPIKey,
		productBody("Ghost", "GHOST-01", 1)), http.StatusNotFound)
}

func TestAdminDeleteProduct(t *testing.T) {
	e := newAdminEnv(t)

	w := e.do(t, http.MethodDelete, "/admin/products/p4", testAPIKey, nil)
	wantStatus(t, w, http.StatusOK)
	if decode(t, w)["message"] != "Product deleted successfully" {
		t.Errorf("body: %s", w.Body.String())
	}
	if p, _ := e.products.FindByID("p4"); p != nil {
		t.Error("product still present")
	}

	wantStatus(t, e.do(t, http.MethodDelete, "/admin/products/p4", testAPIKey, nil), http.StatusNotFound)
}

func TestAdminListUsers(t *testing.T) {
	e := newAdminEnv(t)
	for _, em := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := e.users.Create(&domain.User{ID: em, FirstName: "Max", LastName: "Mu", Email: em}); err != nil {
			t.Fatal(err)
		}
	}

	w := e.do(t, http.MethodGet, "/admin/users?page=1&limit=2", testAPIKey, nil)
	wantStatus(t, w, http.StatusOK)
	body := decode(t, w)
	if body["message"] != "Users retrieved successfully" {
		t.Errorf("message: %v", body["message"])
	}
	users := body["users"].([]any)
	if len(users) != 2 {
		t.Errorf("want page of 2, got %d", len(users))
	}
	pg := body["pagination"].(map[string]any)
	if pg["totalItems"] != float64(3) || pg["totalPages"] != float64(2) {
		t.Errorf("pagination: %v", pg)
	}
}
