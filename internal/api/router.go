package api

import (
	"fmt"
	"time"

	"recipe-browser/internal/api/handlers/health"
	recipeHandler "recipe-browser/internal/api/handlers/recipe"
	"recipe-browser/internal/api/middleware"
	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 預設請求超時
	defaultTimeout = 30 * time.Second
	// 預設請求體大小限制 (1MB)
	defaultMaxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store cache.Store, services recipeHandler.Services) (*gin.Engine, error) {
	if services.Catalog == nil || services.Recipes == nil || services.Pantry == nil ||
		services.Nutrition == nil || services.Weather == nil {
		return nil, fmt.Errorf("failed to set up router: missing service")
	}

	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBodySize := cfg.Server.MaxBodyBytes
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled && cfg.RateLimit.Requests > 0 && cfg.RateLimit.Window > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	router.Use(middleware.Timeout(timeout))

	// 注入設定與快取，供健康檢查使用
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Set("cache", store)
		c.Next()
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, common.ErrNotFound.Response(false))
	})

	api := router.Group("/api/v1")
	api.Use(middleware.Deduplication(cfg))
	recipeHandler.NewHandler(cfg, services).RegisterRoutes(api)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("remote_rewriter", services.Recipes.RemoteEnabled()),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeout),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
