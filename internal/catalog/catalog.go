// Package catalog is the static read-only product source served when the
// live store is unreachable. It implements the same read surface as the
// persistence gateway and is injected explicitly, never reached through a
// package-level global.
package catalog

import (
	"sort"
	"strings"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

type Catalog struct {
	products []domain.Product
}

// New returns a catalog over its own copy of the seed data.
func New() *Catalog {
	c := &Catalog{products: make([]domain.Product, len(seed))}
	copy(c.products, seed)
	return c
}

var seed = []domain.Product{
	{
		ID:         "1",
		Name:       "Laptop Pro",
		Price:      1200,
		SKU:        "LAPTOP-PRO-15",
		Stock:      10,
		Category:   "computers",
		IsActive:   true,
		IsFeatured: true,
	},
	{
		ID:       "2",
		Name:     "Wireless Mouse",
		Price:    50,
		SKU:      "MOUSE-WL-01",
		Stock:    10,
		Category: "accessories",
		IsActive: true,
	},
	{
		ID:       "3",
		Name:     "Mechanical Keyboard",
		Price:    150,
		SKU:      "KEYB-MECH-87",
		Stock:    10,
		Category: "accessories",
		IsActive: true,
	},
}

// List applies the same filter semantics as the SQL gateway, in memory.
func (c *Catalog) List(f domain.ProductFilter) ([]domain.Product, int64, error) {
	matched := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if !c.matches(p, f) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

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

func (c *Catalog) FindByID(id string) (*domain.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (c *Catalog) matches(p domain.Product, f domain.ProductFilter) bool {
	if !p.IsActive {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}
