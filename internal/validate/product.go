package validate

import (
	"strings"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

type ProductPayload struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Price          *float64           `json:"price"`
	ComparePrice   *float64           `json:"comparePrice"`
	SKU            string             `json:"sku"`
	Stock          *int               `json:"stock"`
	Category       string             `json:"category"`
	Brand          string             `json:"brand"`
	Images         []string           `json:"images"`
	Weight         *float64           `json:"weight"`
	Dimensions     *domain.Dimensions `json:"dimensions"`
	Tags           []string           `json:"tags"`
	IsActive       *bool              `json:"isActive"`
	IsFeatured     *bool              `json:"isFeatured"`
	SeoTitle       string             `json:"seoTitle"`
	SeoDescription string             `json:"seoDescription"`
}

func ProductWrite(in *ProductPayload) []string {
	var errs []string

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, "Product name is required")
	case len([]rune(name)) < 2 || len([]rune(name)) > 100:
		errs = append(errs, "Product name must be between 2 and 100 characters long")
	}

	if in.Price == nil {
		errs = append(errs, "Price is required")
	} else if *in.Price < 0 {
		errs = append(errs, "Price must be a non-negative number")
	}

	if in.ComparePrice != nil && *in.ComparePrice < 0 {
		errs = append(errs, "Compare price must be a non-negative number")
	}

	sku := strings.TrimSpace(in.SKU)
	switch {
	case sku == "":
		errs = append(errs, "SKU is required")
	case len(sku) > 50:
		errs = append(errs, "SKU must be at most 50 characters long")
	}

	if in.Stock != nil && *in.Stock < 0 {
		errs = append(errs, "Stock must be a non-negative integer")
	}

	if in.Weight != nil && *in.Weight < 0 {
		errs = append(errs, "Weight must be a non-negative number")
	}
	if len([]rune(strings.TrimSpace(in.SeoTitle))) > 60 {
		errs = append(errs, "SEO title must be at most 60 characters long")
	}
	if len([]rune(strings.TrimSpace(in.SeoDescription))) > 160 {
		errs = append(errs, "SEO description must be at most 160 characters long")
	}

	if len(errs) > 0 {
		return errs
	}
	in.Name = name
	in.SKU = strings.ToUpper(sku)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.SeoTitle = strings.TrimSpace(in.SeoTitle)
	in.SeoDescription = strings.TrimSpace(in.SeoDescription)
	return nil
}
