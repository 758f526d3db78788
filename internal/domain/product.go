package domain

import "time"

// Dimensions in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Product struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	Name           string      `gorm:"size:100;not null" json:"name"`
	Description    string      `gorm:"type:text" json:"description,omitempty"`
	Price          float64     `gorm:"type:decimal(10,2);not null;index" json:"price"`
	ComparePrice   *float64    `gorm:"type:decimal(10,2)" json:"comparePrice,omitempty"`
	SKU            string      `gorm:"column:sku;uniqueIndex;size:50;not null" json:"sku"`
	Stock          int         `gorm:"not null;default:0" json:"stock"`
	Category       string      `gorm:"size:50;index" json:"category,omitempty"`
	Brand          string      `gorm:"size:50" json:"brand,omitempty"`
	Images         []string    `gorm:"serializer:json" json:"images,omitempty"`
	Weight         *float64    `gorm:"type:decimal(8,3)" json:"weight,omitempty"`
	Dimensions     *Dimensions `gorm:"serializer:json" json:"dimensions,omitempty"`
	Tags           []string    `gorm:"serializer:json" json:"tags,omitempty"`
	IsActive       bool        `gorm:"not null;default:true;index" json:"isActive"`
	IsFeatured     bool        `gorm:"not null;default:false;index" json:"isFeatured"`
	SeoTitle       string      `gorm:"size:60" json:"seoTitle,omitempty"`
	SeoDescription string      `gorm:"size:160" json:"seoDescription,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Available() bool { return p.IsActive && p.Stock > 0 }

// ProductFilter selects active products only. Page/Limit are 1-based and
// already clamped by the validators.
type ProductFilter struct {
	Page     int
	Limit    int
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Featured *bool
}

func (f ProductFilter) Offset() int { return (f.Page - 1) * f.Limit }

// ProductReader is the read surface shared by the live gateway and the
// fallback catalog.
type ProductReader interface {
	List(f ProductFilter) ([]Product, int64, error)
	FindByID(id string) (*Product, error)
}

type ProductStore interface {
	ProductReader
	Create(p *Product) error
	Update(p *Product) error
	Delete(id string) (bool, error)
}
