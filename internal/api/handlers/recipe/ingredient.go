package recipe

import (
	"net/http"

	"recipe-browser/internal/core/pantry"
	"recipe-browser/internal/core/scaling"
	"recipe-browser/internal/core/substitution"
	"recipe-browser/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseRequest 解析食材文字
type ParseRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// PantryMatchRequest 手邊食材
type PantryMatchRequest struct {
	Items []pantry.PantryItem `json:"items" binding:"required,dive"`
}

// SubstitutionRequest 食材替換；未提供食材時使用 recipe_id 對應的食譜
type SubstitutionRequest struct {
	RecipeID    string   `json:"recipe_id,omitempty"`
	Ingredients []string `json:"ingredients"`
	Allergies   []string `json:"allergies"`
	Diets       []string `json:"diets"`
	Unavailable []string `json:"unavailable"`
}

// HandleParseIngredients 將食材文字解析為結構化資料
func (h *Handler) HandleParseIngredients(c *gin.Context) {
	requestID := getRequestID(c)

	var req ParseRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}

	parsed := make([]scaling.ParsedIngredient, len(req.Lines))
	for i, line := range req.Lines {
		parsed[i] = scaling.Parse(line)
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": parsed})
}

// HandlePantryMatch 依手邊食材找出可做的食譜
func (h *Handler) HandlePantryMatch(c *gin.Context) {
	requestID := getRequestID(c)

	var req PantryMatchRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}

	matches := h.services.Pantry.FindMatches(c.Request.Context(), req.Items)

	common.LogInfo("食材比對完成",
		zap.String("request_id", requestID),
		zap.Int("pantry_items", len(req.Items)),
		zap.Int("matches", len(matches)),
	)

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// HandleSubstitutions 依過敏、飲食限制與缺少的食材替換
func (h *Handler) HandleSubstitutions(c *gin.Context) {
	requestID := getRequestID(c)

	var req SubstitutionRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		if req.RecipeID == "" {
			h.respondError(c, requestID, common.NewValidationError("ingredients or recipe_id is required"))
			return
		}
		recipe, err := h.services.Catalog.Get(c.Request.Context(), req.RecipeID)
		if err != nil {
			h.respondError(c, requestID, err)
			return
		}
		ingredients = recipe.Ingredients
	}

	result := substitution.New(substitution.Preferences{
		Allergies:   req.Allergies,
		Diets:       req.Diets,
		Unavailable: req.Unavailable,
	}).Process(ingredients)

	c.JSON(http.StatusOK, result)
}
