package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	recipeHandler "recipe-browser/internal/api/handlers/recipe"
	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/core/nutrition"
	"recipe-browser/internal/core/pantry"
	recipeService "recipe-browser/internal/core/recipe"
	"recipe-browser/internal/core/rewrite"
	"recipe-browser/internal/core/weather"
	"recipe-browser/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Version: "test", MaxServings: 20},
		Server: config.ServerConfig{
			RequestTimeout: 5 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		Cache:       config.CacheConfig{Enabled: true, Backend: "memory", MaxSize: 10, TTL: time.Minute},
		DedupWindow: time.Minute,
	}
}

func testServices(cfg *config.Config) recipeHandler.Services {
	cat := catalog.New()
	return recipeHandler.Services{
		Catalog:   cat,
		Recipes:   recipeService.NewService(cat, rewrite.NewLocalRewriter(), nil),
		Pantry:    pantry.NewMatcher(cat),
		Nutrition: nutrition.NewCalculator(nutrition.NewClient(&cfg.Nutrition), nil, 1),
		Weather:   weather.NewService(nil, cat, nil, "Chennai"),
	}
}

func TestSetupRouter(t *testing.T) {
	cfg := testConfig()
	store, err := cache.NewStore(&cfg.Cache)
	require.NoError(t, err)
	defer store.Close()

	router, err := SetupRouter(cfg, store, testServices(cfg))
	require.NoError(t, err)

	for path, status := range map[string]int{
		"/health":                 http.StatusOK,
		"/ready":                  http.StatusOK,
		"/live":                   http.StatusOK,
		"/api/v1/recipes":         http.StatusOK,
		"/api/v1/recipes/missing": http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "test", health["version"])
	assert.Contains(t, health, "cache")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var notFound map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notFound))
	assert.Equal(t, "NOT_FOUND", notFound["code"])
}

func TestSetupRouterDeduplicatesPosts(t *testing.T) {
	cfg := testConfig()
	store, err := cache.NewStore(&cfg.Cache)
	require.NoError(t, err)
	defer store.Close()

	router, err := SetupRouter(cfg, store, testServices(cfg))
	require.NoError(t, err)

	post := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ingredients/parse", strings.NewReader(`{"lines":["1 cup rice"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestSetupRouterMissingService(t *testing.T) {
	cfg := testConfig()
	_, err := SetupRouter(cfg, nil, recipeHandler.Services{})
	assert.Error(t, err)
}
