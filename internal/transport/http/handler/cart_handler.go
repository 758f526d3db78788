package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/middleware"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/validate"
	"github.com/Mazin-Fouad/ecommerce-api/pkg/utils"
)

// CartHandler. Reads degrade to an empty cart when storage is down; every
// mutation fails hard, carts are durable state.
type CartHandler struct {
	cart     domain.CartStore
	products domain.ProductReader
	log      *zap.Logger
	resp     response.Writer
}

func NewCartHandler(cart domain.CartStore, products domain.ProductReader, l *zap.Logger, w response.Writer) *CartHandler {
	return &CartHandler{cart: cart, products: products, log: l, resp: w}
}

func (h *CartHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)

	items, err := h.cart.ListByUser(uid)
	fellBack := false
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			h.resp.Err(c, response.Internal("Failed to retrieve cart", err))
			return
		}
		// cart rows have no static counterpart; the fallback is an empty cart
		h.log.Warn("cart store unavailable, serving empty cart", zap.Error(err))
		items = nil
		fellBack = true
	}

	views := make([]cartItemView, 0, len(items))
	total := decimal.Zero
	for i := range items {
		views = append(views, viewCartItem(&items[i]))
		total = total.Add(items[i].Total())
	}
	totalPrice, _ := total.Round(2).Float64()

	msg := "Cart retrieved successfully"
	if fellBack {
		msg += " (fallback data)"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"cart": gin.H{
			"items":      views,
			"totalItems": len(views),
			"totalPrice": totalPrice,
		},
	})
}

type addToCartPayload struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// Add puts a product into the cart, snapshotting its current price and name.
// A second add for the same product increments the existing row instead of
// creating a duplicate.
func (h *CartHandler) Add(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)

	var in addToCartPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if in.ProductID == "" {
		h.resp.Err(c, response.BadRequest("Product ID is required"))
		return
	}
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < validate.MinQuantity || qty > validate.MaxQuantity {
		h.resp.Err(c, response.BadRequest("Quantity must be between 1 and 999"))
		return
	}

	p, err := h.products.FindByID(in.ProductID)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to add product to cart", err))
		return
	}
	if p == nil || !p.IsActive {
		h.resp.Err(c, response.NotFound("Product not found"))
		return
	}
	if p.Stock > 0 && p.Stock < qty {
		h.resp.Err(c, response.BadRequest(fmt.Sprintf("Insufficient stock. Available: %d", p.Stock)))
		return
	}

	existing, err := h.cart.FindByUserAndProduct(uid, p.ID)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to add product to cart", err))
		return
	}
	if existing != nil {
		existing.Quantity += qty
		if err := h.cart.Update(existing); err != nil {
			h.resp.Err(c, response.Internal("Failed to add product to cart", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart quantity updated successfully",
			"item":    viewCartItem(existing),
		})
		return
	}

	item := &domain.CartItem{
		ID:          utils.NewID(),
		UserID:      uid,
		ProductID:   p.ID,
		Quantity:    qty,
		Price:       p.Price,
		ProductName: p.Name,
	}
	if err := h.cart.Create(item); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			// a concurrent add won the race; merge into its row
			h.mergeAfterRace(c, uid, p.ID, qty)
			return
		}
		h.resp.Err(c, response.Internal("Failed to add product to cart", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added to cart successfully",
		"item":    viewCartItem(item),
	})
}

func (h *CartHandler) mergeAfterRace(c *gin.Context, uid, productID string, qty int) {
	existing, err := h.cart.FindByUserAndProduct(uid, productID)
	if err != nil || existing == nil {
		h.resp.Err(c, response.Internal("Failed to add product to cart", err))
		return
	}
	existing.Quantity += qty
	if err := h.cart.Update(existing); err != nil {
		h.resp.Err(c, response.Internal("Failed to add product to cart", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart quantity updated successfully",
		"item":    viewCartItem(existing),
	})
}

type updateCartPayload struct {
	Quantity *int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)
	itemID := c.Param("itemId")

	var in updateCartPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if in.Quantity == nil || *in.Quantity < validate.MinQuantity || *in.Quantity > validate.MaxQuantity {
		h.resp.Err(c, response.BadRequest("Quantity must be between 1 and 999"))
		return
	}

	item, err := h.cart.FindByID(itemID, uid)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to update cart item", err))
		return
	}
	if item == nil {
		h.resp.Err(c, response.NotFound("Cart item not found"))
		return
	}

	item.Quantity = *in.Quantity
	if err := h.cart.Update(item); err != nil {
		h.resp.Err(c, response.Internal("Failed to update cart item", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart quantity updated successfully",
		"item":    viewCartItem(item),
	})
}

func (h *CartHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)
	itemID := c.Param("itemId")

	deleted, err := h.cart.Delete(itemID, uid)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to remove product from cart", err))
		return
	}
	if !deleted {
		h.resp.Err(c, response.NotFound("Cart item not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully"})
}

func (h *CartHandler) Clear(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)

	if err := h.cart.ClearByUser(uid); err != nil {
		h.resp.Err(c, response.Internal("Failed to clear cart", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
