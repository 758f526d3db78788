package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/validate"
	"github.com/Mazin-Fouad/ecommerce-api/pkg/utils"
)

// AdminHandler owns the write side of the catalog plus user inspection.
// It sits behind the API key gate, not the JWT one.
type AdminHandler struct {
	products domain.ProductStore
	users    domain.UserStore
	log      *zap.Logger
	resp     response.Writer
}

func NewAdminHandler(products domain.ProductStore, users domain.UserStore, l *zap.Logger, w response.Writer) *AdminHandler {
	return &AdminHandler{products: products, users: users, log: l, resp: w}
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var in validate.ProductPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if errs := validate.ProductWrite(&in); len(errs) > 0 {
		h.resp.Err(c, response.Validation(errs))
		return
	}

	p := productFromPayload(&in)
	p.ID = utils.NewID()
	if err := h.products.Create(p); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			h.resp.Err(c, response.Conflict("A product with this SKU already exists"))
			return
		}
		h.resp.Err(c, response.Internal("Failed to create product", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": p,
	})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var in validate.ProductPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if errs := validate.ProductWrite(&in); len(errs) > 0 {
		h.resp.Err(c, response.Validation(errs))
		return
	}

	existing, err := h.products.FindByID(id)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to update product", err))
		return
	}
	if existing == nil {
		h.resp.Err(c, response.NotFound("Product not found"))
		return
	}

	p := productFromPayload(&in)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := h.products.Update(p); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			h.resp.Err(c, response.Conflict("A product with this SKU already exists"))
			return
		}
		h.resp.Err(c, response.Internal("Failed to update product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": p,
	})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.products.Delete(id)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to delete product", err))
		return
	}
	if !deleted {
		h.resp.Err(c, response.NotFound("Product not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := validate.Pagination(c.Query("page"), c.Query("limit"))

	users, total, err := h.users.List((page-1)*limit, limit)
	if err != nil {
		h.resp.Err(c, response.Internal("Failed to retrieve users", err))
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, viewUser(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Users retrieved successfully",
		"users":      views,
		"pagination": viewPagination(page, limit, total),
	})
}

func productFromPayload(in *validate.ProductPayload) *domain.Product {
	p := &domain.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          *in.Price,
		ComparePrice:   in.ComparePrice,
		SKU:            in.SKU,
		Category:       in.Category,
		Brand:          in.Brand,
		Images:         in.Images,
		Weight:         in.Weight,
		Dimensions:     in.Dimensions,
		Tags:           in.Tags,
		IsActive:       true,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	return p
}
