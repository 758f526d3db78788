package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	mdw "github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/middleware"
)

// NewAdminEngine serves the operator surface. It binds to its own port and
// every route sits behind the API key check.
func NewAdminEngine(l *zap.Logger, apiKey string, admin *handler.AdminHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.MaxBodyBytes(1<<20),
		mdw.Recovery(l),
		ginzap.Ginzap(l, time.RFC3339, true),
		mdw.RequireAPIKey(apiKey),
	)

	g := r.Group("/admin")
	g.POST("/products", admin.CreateProduct)
	g.PUT("/products/:id", admin.UpdateProduct)
	g.DELETE("/products/:id", admin.DeleteProduct)
	g.GET("/users", admin.ListUsers)

	return r
}
