package catalog

import (
	"testing"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

func TestListAll(t *testing.T) {
	c := New()
	products, total, err := c.List(domain.ProductFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("want all 3 seed products, got total=%d len=%d", total, len(products))
	}
	// stable id order
	if products[0].ID != "1" || products[2].ID != "3" {
		t.Errorf("unexpected order: %v %v %v", products[0].ID, products[1].ID, products[2].ID)
	}
}

func TestListCategoryFilter(t *testing.T) {
	c := New()
	products, total, err := c.List(domain.ProductFilter{Page: 1, Limit: 10, Category: "Accessories"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Fatalf("want 2 accessories, got %d", total)
	}
	for _, p := range products {
		if p.Category != "accessories" {
			t.Errorf("wrong category in result: %q", p.Category)
		}
	}
}

func TestListPriceRange(t *testing.T) {
	minP, maxP := 100.0, 200.0
	c := New()
	products, total, err := c.List(domain.ProductFilter{Page: 1, Limit: 10, MinPrice: &minP, MaxPrice: &maxP})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || products[0].Name != "Mechanical Keyboard" {
		t.Fatalf("want only the keyboard, got %v", products)
	}
}

func TestListSearch(t *testing.T) {
	c := New()
	_, total, err := c.List(domain.ProductFilter{Page: 1, Limit: 10, Search: "lapTOP"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Fatalf("case-insensitive search should match one product, got %d", total)
	}
}

func TestListFeatured(t *testing.T) {
	f := true
	c := New()
	products, total, err := c.List(domain.ProductFilter{Page: 1, Limit: 10, Featured: &f})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || products[0].ID != "1" {
		t.Fatalf("want only the featured laptop, got %v", products)
	}
}

func TestListPagination(t *testing.T) {
	c := New()
	products, total, err := c.List(domain.ProductFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(products) != 1 || products[0].ID != "3" {
		t.Fatalf("page 2 of 2-per-page: total=%d products=%v", total, products)
	}

	products, total, err = c.List(domain.ProductFilter{Page: 9, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(products) != 0 {
		t.Fatalf("page past the end must be empty, got %v", products)
	}
}

func TestFindByID(t *testing.T) {
	c := New()
	p, err := c.FindByID("2")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "Wireless Mouse" {
		t.Fatalf("got %v", p)
	}

	p, err = c.FindByID("999999")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("unknown id must return nil, got %v", p)
	}
}

func TestFindByIDReturnsCopy(t *testing.T) {
	c := New()
	p, _ := c.FindByID("1")
	p.Stock = 0
	again, _ := c.FindByID("1")
	if again.Stock != 10 {
		t.Fatal("caller mutation leaked into the catalog")
	}
}
