package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem snapshots price and name at add time so historical cart totals
// stay stable when the product later changes.
type CartItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID   string    `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ProductName string    `gorm:"size:100;not null" json:"productName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CartItem) TableName() string { return "cart_items" }

func (i *CartItem) Total() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CartStore interface {
	ListByUser(userID string) ([]CartItem, error)
	FindByID(id, userID string) (*CartItem, error)
	FindByUserAndProduct(userID, productID string) (*CartItem, error)
	Create(i *CartItem) error
	Update(i *CartItem) error
	Delete(id, userID string) (bool, error)
	ClearByUser(userID string) error
}
