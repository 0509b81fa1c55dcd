package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-browser/internal/api"
	recipeHandler "recipe-browser/internal/api/handlers/recipe"
	"recipe-browser/internal/core/ai"
	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/core/nutrition"
	"recipe-browser/internal/core/pantry"
	recipeService "recipe-browser/internal/core/recipe"
	"recipe-browser/internal/core/rewrite"
	"recipe-browser/internal/core/weather"
	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.Bool("ai_enabled", cfg.AI.Enabled),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
		zap.String("ai_api_key", config.MaskAPIKey(cfg.AI.APIKey)),
		zap.String("nutrition_api_key", config.MaskAPIKey(cfg.Nutrition.APIKey)),
		zap.String("weather_api_key", config.MaskAPIKey(cfg.Weather.APIKey)),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 初始化快取，Redis 無法連線時退回記憶體快取
	store, err := cache.NewStore(&cfg.Cache)
	if err != nil {
		common.LogWarn("快取初始化失敗，改用記憶體快取", zap.Error(err))
		store = cache.NewManager(&cfg.Cache)
	}
	defer store.Close()

	// 遠端步驟改寫（可選）
	var remote rewrite.StepRewriter
	if cfg.AI.Enabled {
		provider, err := ai.NewProvider(context.Background(), &cfg.AI)
		if err != nil {
			common.LogWarn("AI 提供者初始化失敗，僅使用本地規則", zap.Error(err))
		} else {
			queued := ai.NewQueuedProvider(provider, cfg.AI.QueueWorkers, cfg.AI.QueueSize)
			defer queued.Close()
			remote = ai.NewRemoteRewriter(queued, store, &cfg.AI)
		}
	}

	// 天氣服務沒有金鑰時只回傳預設建議
	var weatherProvider weather.Provider
	if cfg.Weather.APIKey != "" {
		weatherProvider = weather.NewClient(&cfg.Weather)
	}

	cat := catalog.New()
	services := recipeHandler.Services{
		Catalog:   cat,
		Recipes:   recipeService.NewService(cat, rewrite.NewLocalRewriter(), remote),
		Pantry:    pantry.NewMatcher(cat),
		Nutrition: nutrition.NewCalculator(nutrition.NewClient(&cfg.Nutrition), store, cfg.Nutrition.Workers),
		Weather:   weather.NewService(weatherProvider, cat, store, cfg.Weather.DefaultCity),
	}

	router, err := api.SetupRouter(cfg, store, services)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo("Server exited")
}
