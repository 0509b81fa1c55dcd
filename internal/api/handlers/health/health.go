package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
	Features  map[string]bool        `json:"features"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, ok := configFrom(c)
	if !ok {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, common.ErrInternalError.Response(false))
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Features: map[string]bool{
			"remote_rewriter": cfg.AI.Enabled,
			"nutrition":       cfg.Nutrition.APIKey != "",
			"weather":         cfg.Weather.APIKey != "",
		},
	}

	if store, ok := storeFrom(c); ok {
		response.Cache = store.Stats()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，設定與快取都已注入才算就緒
func ReadinessCheck(c *gin.Context) {
	_, hasConfig := configFrom(c)
	_, hasCache := storeFrom(c)
	if !hasConfig || !hasCache {
		c.JSON(common.ErrServiceUnavailable.Status, gin.H{
			"status": "not ready",
			"code":   common.ErrServiceUnavailable.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func configFrom(c *gin.Context) (*config.Config, bool) {
	v, exists := c.Get("config")
	if !exists {
		return nil, false
	}
	cfg, ok := v.(*config.Config)
	return cfg, ok && cfg != nil
}

func storeFrom(c *gin.Context) (cache.Store, bool) {
	v, exists := c.Get("cache")
	if !exists {
		return nil, false
	}
	store, ok := v.(cache.Store)
	return store, ok && store != nil
}
