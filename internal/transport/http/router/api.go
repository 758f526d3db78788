package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/core/auth"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	mdw "github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/middleware"
)

// Deps collects everything the public engine mounts.
type Deps struct {
	Log      *zap.Logger
	JWT      *auth.JWTer
	System   *handler.SystemHandler
	Users    *handler.UserHandler
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(100, 200),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		ginzap.Ginzap(d.Log, time.RFC3339, true),
		cors.Default(),
	)

	r.GET("/", d.System.Root)
	r.GET("/health", d.System.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/register", d.Users.Register)
	users.POST("/login", d.Users.Login)
	users.PUT("/profile", mdw.AuthJWT(d.JWT), d.Users.UpdateProfile)

	api.GET("/products", d.Products.List)
	api.GET("/products/:id", d.Products.Get)

	cart := api.Group("/cart", mdw.AuthJWT(d.JWT))
	cart.GET("", d.Cart.Get)
	cart.POST("", d.Cart.Add)
	cart.PUT("/:itemId", d.Cart.UpdateItem)
	cart.DELETE("/:itemId", d.Cart.Remove)
	cart.DELETE("", d.Cart.Clear)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("route %s does not exist", c.Request.URL.Path),
		})
	})

	return r
}
