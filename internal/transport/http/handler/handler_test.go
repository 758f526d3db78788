package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/catalog"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/auth"
	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/router"
	"github.com/Mazin-Fouad/ecommerce-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

// ---- in-memory stores ----

type fakeUsers struct {
	byID map[string]domain.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]domain.User{}} }

func (s *fakeUsers) Create(u *domain.User) error {
	for _, v := range s.byID {
		if v.Email == u.Email {
			return fmt.Errorf("%w: duplicate email", domain.ErrDuplicateKey)
		}
	}
	s.byID[u.ID] = *u
	return nil
}

func (s *fakeUsers) FindByID(id string) (*domain.User, error) {
	if u, ok := s.byID[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *fakeUsers) FindByEmail(email string) (*domain.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUsers) Update(u *domain.User) error {
	s.byID[u.ID] = *u
	return nil
}

func (s *fakeUsers) List(offset, limit int) ([]domain.User, int64, error) {
	all := make([]domain.User, 0, len(s.byID))
	for _, u := range s.byID {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakeProducts struct {
	byID map[string]domain.Product
}

func newFakeProducts(ps ...domain.Product) *fakeProducts {
	s := &fakeProducts{byID: map[string]domain.Product{}}
	for _, p := range ps {
		s.byID[p.ID] = p
	}
	return s
}

func (s *fakeProducts) List(f domain.ProductFilter) ([]domain.Product, int64, error) {
	matched := make([]domain.Product, 0, len(s.byID))
	for _, p := range s.byID {
		if !p.IsActive {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Featured != nil && p.IsFeatured != *f.Featured {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	start := f.Offset()
	if start >= len(matched) {
		return []domain.Product{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeProducts) FindByID(id string) (*domain.Product, error) {
	if p, ok := s.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *fakeProducts) Create(p *domain.Product) error {
	for _, v := range s.byID {
		if v.SKU == p.SKU {
			return fmt.Errorf("%w: duplicate sku", domain.ErrDuplicateKey)
		}
	}
	s.byID[p.ID] = *p
	return nil
}

func (s *fakeProducts) Update(p *domain.Product) error {
	s.byID[p.ID] = *p
	return nil
}

func (s *fakeProducts) Delete(id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

type fakeCart struct {
	byID map[string]domain.CartItem
}

func newFakeCart() *fakeCart { return &fakeCart{byID: map[string]domain.CartItem{}} }

func (s *fakeCart) ListByUser(userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, i := range s.byID {
		if i.UserID == userID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items, nil
}

func (s *fakeCart) FindByID(id, userID string) (*domain.CartItem, error) {
	if i, ok := s.byID[id]; ok && i.UserID == userID {
		return &i, nil
	}
	return nil, nil
}

func (s *fakeCart) FindByUserAndProduct(userID, productID string) (*domain.CartItem, error) {
	for _, i := range s.byID {
		if i.UserID == userID && i.ProductID == productID {
			i := i
			return &i, nil
		}
	}
	return nil, nil
}

func (s *fakeCart) Create(i *domain.CartItem) error {
	for _, v := range s.byID {
		if v.UserID == i.UserID && v.ProductID == i.ProductID {
			return fmt.Errorf("%w: duplicate cart row", domain.ErrDuplicateKey)
		}
	}
	s.byID[i.ID] = *i
	return nil
}

func (s *fakeCart) Update(i *domain.CartItem) error {
	s.byID[i.ID] = *i
	return nil
}

func (s *fakeCart) Delete(id, userID string) (bool, error) {
	if i, ok := s.byID[id]; ok && i.UserID == userID {
		delete(s.byID, id)
		return true, nil
	}
	return false, nil
}

func (s *fakeCart) ClearByUser(userID string) error {
	for id, i := range s.byID {
		if i.UserID == userID {
			delete(s.byID, id)
		}
	}
	return nil
}

// ---- harness ----

type env struct {
	users    *fakeUsers
	products domain.ProductStore
	cart     domain.CartStore
	jwt      *auth.JWTer
	engine   *gin.Engine
}

type envOpt func(*env)

func withProducts(s domain.ProductStore) envOpt { return func(e *env) { e.products = s } }
func withCart(s domain.CartStore) envOpt        { return func(e *env) { e.cart = s } }

func newEnv(t *testing.T, opts ...envOpt) *env {
	t.Helper()
	e := &env{
		users:    newFakeUsers(),
		products: newFakeProducts(testProducts()...),
		cart:     newFakeCart(),
		jwt:      &auth.JWTer{Secret: []byte("test-secret"), Issuer: "ecommerce-api", TTL: time.Hour},
	}
	for _, opt := range opts {
		opt(e)
	}

	log := zap.NewNop()
	resp := response.Writer{}
	e.engine = router.NewAPIEngine(router.Deps{
		Log:      log,
		JWT:      e.jwt,
		System:   handler.NewSystemHandler("1.0.0"),
		Users:    handler.NewUserHandler(e.users, e.jwt, log, resp),
		Products: handler.NewProductHandler(e.products, catalog.New(), nil, 0, log, resp),
		Cart:     handler.NewCartHandler(e.cart, e.products, log, resp),
	})
	return e
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Laptop Pro", Price: 1200, SKU: "LAPTOP-PRO-15", Stock: 10, Category: "computers", IsActive: true, IsFeatured: true},
		{ID: "p2", Name: "Wireless Mouse", Price: 50, SKU: "MOUSE-WL-01", Stock: 4, Category: "accessories", IsActive: true},
		{ID: "p3", Name: "Hidden Gadget", Price: 10, SKU: "HIDDEN-01", Stock: 1, Category: "accessories", IsActive: false},
		{ID: "p4", Name: "Free Sticker", Price: 0, SKU: "STICK-01", Stock: 0, Category: "accessories", IsActive: true},
	}
}

func (e *env) token(t *testing.T, uid, email string) string {
	t.Helper()
	tok, err := e.jwt.Issue(uid, email)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// registerUser creates a user directly in the store and returns its token.
func (e *env) registerUser(t *testing.T, email string) (string, string) {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    "Max",
		LastName:     "Mustermann",
		Email:        email,
		PasswordHash: utils.HashPassword("secret1"),
	}
	if err := e.users.Create(u); err != nil {
		t.Fatal(err)
	}
	return u.ID, e.token(t, u.ID, u.Email)
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad json body %q: %v", w.Body.String(), err)
	}
	return m
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
