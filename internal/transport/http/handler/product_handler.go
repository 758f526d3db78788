package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/core/cache"
	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/validate"
)

type ProductHandler struct {
	products domain.ProductReader // live gateway
	fallback domain.ProductReader // static catalog
	cache    *cache.Cache         // nil disables caching
	cacheTTL time.Duration
	log      *zap.Logger
	resp     response.Writer
}

func NewProductHandler(live, fallback domain.ProductReader, ch *cache.Cache, ttl time.Duration, l *zap.Logger, w response.Writer) *ProductHandler {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ProductHandler{products: live, fallback: fallback, cache: ch, cacheTTL: ttl, log: l, resp: w}
}

type listProductsQuery struct {
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Search   string `form:"search"`
	Featured string `form:"featured"`
}

// List serves the catalog with filters and pagination. On a storage fault it
// transparently substitutes the fallback catalog and tags the message.
func (h *ProductHandler) List(c *gin.Context) {
	var q listProductsQuery
	_ = c.ShouldBindQuery(&q)

	page, limit := validate.Pagination(q.Page, q.Limit)
	minPrice, maxPrice, issue := validate.PriceFilter(q.MinPrice, q.MaxPrice)
	if issue != nil {
		h.resp.Err(c, response.Query(issue.Message, issue.Detail))
		return
	}
	search, issue := validate.SearchTerm(q.Search)
	if issue != nil {
		h.resp.Err(c, response.Query(issue.Message, issue.Detail))
		return
	}

	f := domain.ProductFilter{
		Page:     page,
		Limit:    limit,
		Category: q.Category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Search:   search,
	}
	if q.Featured != "" {
		if v, err := strconv.ParseBool(q.Featured); err == nil {
			f.Featured = &v
		}
	}

	products, total, err := h.loadList(c, f)
	fellBack := false
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			h.resp.Err(c, response.Internal("Failed to retrieve products", err))
			return
		}
		h.log.Warn("product store unavailable, serving fallback catalog", zap.Error(err))
		products, total, err = h.fallback.List(f)
		if err != nil {
			h.resp.Err(c, response.Internal("Failed to retrieve products", err))
			return
		}
		fellBack = true
	}
	if products == nil {
		products = []domain.Product{}
	}

	msg := "Products retrieved successfully"
	if fellBack {
		msg += " (fallback data)"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    msg,
		"products":   products,
		"pagination": viewPagination(page, limit, total),
	})
}

// Get returns one product by id, falling back like List.
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	p, err := h.loadOne(c, id)
	fellBack := false
	if err != nil {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			h.resp.Err(c, response.Internal("Failed to retrieve product", err))
			return
		}
		h.log.Warn("product store unavailable, serving fallback catalog", zap.Error(err))
		p, err = h.fallback.FindByID(id)
		if err != nil {
			h.resp.Err(c, response.Internal("Failed to retrieve product", err))
			return
		}
		fellBack = true
	}
	if p == nil {
		h.resp.Err(c, response.NotFound("Product not found"))
		return
	}

	msg := "Product retrieved successfully"
	if fellBack {
		msg += " (fallback data)"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "product": p})
}

type listResult struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
}

func (h *ProductHandler) loadList(c *gin.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	res, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(), listKey(f), h.cacheTTL,
		func(context.Context) (*listResult, error) {
			products, total, err := h.products.List(f)
			if err != nil {
				return nil, err
			}
			return &listResult{Products: products, Total: total}, nil
		})
	if err != nil {
		return nil, 0, err
	}
	return res.Products, res.Total, nil
}

func (h *ProductHandler) loadOne(c *gin.Context, id string) (*domain.Product, error) {
	return cache.GetOrLoadJSON(h.cache, c.Request.Context(), "product:"+id, h.cacheTTL,
		func(context.Context) (*domain.Product, error) {
			return h.products.FindByID(id)
		})
}

func listKey(f domain.ProductFilter) string {
	return fmt.Sprintf("products:p%d:l%d:c%s:min%s:max%s:s%s:f%s",
		f.Page, f.Limit, f.Category,
		floatKey(f.MinPrice), floatKey(f.MaxPrice),
		f.Search, boolKey(f.Featured))
}

func floatKey(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func boolKey(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}
