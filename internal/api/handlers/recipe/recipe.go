package recipe

import (
	"net/http"

	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/core/nutrition"
	"recipe-browser/internal/core/pantry"
	recipeService "recipe-browser/internal/core/recipe"
	"recipe-browser/internal/core/weather"
	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services 處理程序需要的服務
type Services struct {
	Catalog   *catalog.Catalog
	Recipes   *recipeService.Service
	Pantry    *pantry.Matcher
	Nutrition *nutrition.Calculator
	Weather   *weather.Service
}

// AdjustRequest 調整目錄食譜份量
type AdjustRequest struct {
	Servings  int  `json:"servings"`
	UseRemote bool `json:"use_remote"`
}

// ScaleRequest 調整自訂食材與步驟
type ScaleRequest struct {
	Name         string   `json:"name,omitempty"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions []string `json:"instructions"`
	CookingTime  int      `json:"cooking_time"`
	Servings     int      `json:"servings"`
	UseRemote    bool     `json:"use_remote"`
}

// Handler 食譜處理程序
type Handler struct {
	services    Services
	maxServings int
	debug       bool
}

// NewHandler 創建新的食譜處理程序
func NewHandler(cfg *config.Config, services Services) *Handler {
	maxServings := cfg.App.MaxServings
	if maxServings < 1 {
		maxServings = 20
	}
	return &Handler{
		services:    services,
		maxServings: maxServings,
		debug:       cfg.App.Debug,
	}
}

// RegisterRoutes 註冊所有 API 路由
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.HandleListRecipes)
		recipes.GET("/:id", h.HandleGetRecipe)
		recipes.POST("/:id/adjust", h.HandleAdjustRecipe)
	}

	api.POST("/scale", h.HandleScale)
	api.POST("/ingredients/parse", h.HandleParseIngredients)
	api.POST("/pantry/match", h.HandlePantryMatch)
	api.POST("/nutrition", h.HandleNutrition)
	api.GET("/weather/suggestions", h.HandleWeatherSuggestions)
	api.POST("/substitutions", h.HandleSubstitutions)
}

// HandleListRecipes 列出或搜尋食譜
func (h *Handler) HandleListRecipes(c *gin.Context) {
	query := c.Query("q")
	recipes := h.services.Catalog.Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleGetRecipe 取得單一食譜
func (h *Handler) HandleGetRecipe(c *gin.Context) {
	requestID := getRequestID(c)

	recipe, err := h.services.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleAdjustRecipe 依份量調整目錄食譜
func (h *Handler) HandleAdjustRecipe(c *gin.Context) {
	requestID := getRequestID(c)

	var req AdjustRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}
	if err := h.checkServings(req.Servings); err != nil {
		h.respondError(c, requestID, err)
		return
	}

	common.LogInfo("開始調整食譜份量",
		zap.String("request_id", requestID),
		zap.String("recipe_id", c.Param("id")),
		zap.Int("servings", req.Servings),
		zap.Bool("use_remote", req.UseRemote),
	)

	adjusted, err := h.services.Recipes.Adjust(c.Request.Context(), recipeService.AdjustRequest{
		RecipeID:  c.Param("id"),
		Servings:  req.Servings,
		UseRemote: req.UseRemote,
	})
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	common.LogInfo("食譜份量調整完成",
		zap.String("request_id", requestID),
		zap.String("rewrite_source", string(adjusted.RewriteSource)),
	)

	c.JSON(http.StatusOK, adjusted)
}

// HandleScale 調整自訂食材與步驟
func (h *Handler) HandleScale(c *gin.Context) {
	requestID := getRequestID(c)

	var req ScaleRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}
	if err := h.checkServings(req.Servings); err != nil {
		h.respondError(c, requestID, err)
		return
	}

	adjusted, err := h.services.Recipes.ScaleLines(c.Request.Context(), recipeService.ScaleRequest{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		UseRemote:    req.UseRemote,
	})
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, adjusted)
}
