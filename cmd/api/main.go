package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/catalog"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/auth"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/cache"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/config"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/database"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/logger"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/server"
	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/repo"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Storage. A failed open does not kill the process: product reads keep
	// working off the static catalog and everything else answers 500.
	var (
		users    domain.UserStore    = repo.UnavailableUsers{}
		products domain.ProductStore = repo.UnavailableProducts{}
		cartSt   domain.CartStore    = repo.UnavailableCart{}
	)
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Warn("database unavailable, running in fallback mode", zap.Error(err))
	} else {
		log.Info("database connected", zap.String("driver", cfg.DB.Driver))
		if cfg.DB.AutoMigrate {
			if err := db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.CartItem{}); err != nil {
				log.Fatal("automigrate failed", zap.Error(err))
			}
			log.Info("automigrate done")
		}
		users = repo.NewUserRepo(db)
		products = repo.NewProductRepo(db)
		cartSt = repo.NewCartRepo(db)
	}

	var ch *cache.Cache
	if cfg.Redis.Addr != "" {
		ch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}
	resp := response.Writer{Verbose: cfg.Verbose()}
	fallback := catalog.New()

	r := router.NewAPIEngine(router.Deps{
		Log:      log,
		JWT:      jwter,
		System:   handler.NewSystemHandler(cfg.App.Version),
		Users:    handler.NewUserHandler(users, jwter, log, resp),
		Products: handler.NewProductHandler(products, fallback, ch, time.Duration(cfg.Redis.CacheTTLSec)*time.Second, log, resp),
		Cart:     handler.NewCartHandler(cartSt, products, log, resp),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		log.Info("api listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api serve failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.Rotate.Filename == "" {
		return logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     true,
		Filename:   cfg.Log.Rotate.Filename,
		MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
		MaxBackups: cfg.Log.Rotate.MaxBackups,
		MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
		Compress:   cfg.Log.Rotate.Compress,
	})
}
