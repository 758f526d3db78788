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

	"github.com/Mazin-Fouad/ecommerce-api/internal/core/config"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/database"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/logger"
	"github.com/Mazin-Fouad/ecommerce-api/internal/core/server"
	"github.com/Mazin-Fouad/ecommerce-api/internal/repo"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/handler"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/router"
)

// The admin binary has no fallback mode. Catalog writes need the database,
// so a failed open is fatal here.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.App.Admin.APIKey == "" {
		log.Fatal("admin api key not configured")
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	resp := response.Writer{Verbose: cfg.Verbose()}
	adminH := handler.NewAdminHandler(repo.NewProductRepo(db), repo.NewUserRepo(db), log, resp)
	r := router.NewAdminEngine(log, cfg.App.Admin.APIKey, adminH)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	go func() {
		log.Info("admin api listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api serve failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
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
