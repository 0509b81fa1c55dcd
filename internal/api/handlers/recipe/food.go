package recipe

import (
	"net/http"

	"recipe-browser/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NutritionRequest 營養計算；ingredients 與 recipe_id 擇一
type NutritionRequest struct {
	RecipeID    string   `json:"recipe_id,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Servings    int      `json:"servings"`
}

// HandleNutrition 計算每份營養資訊
func (h *Handler) HandleNutrition(c *gin.Context) {
	requestID := getRequestID(c)

	var req NutritionRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, requestID, err)
		return
	}
	if err := h.checkServings(req.Servings); err != nil {
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

	result, err := h.services.Nutrition.Calculate(c.Request.Context(), ingredients, req.Servings)
	if err != nil {
		h.respondError(c, requestID, err)
		return
	}

	common.LogInfo("營養計算完成",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(ingredients)),
		zap.Int("unmatched", len(result.Unmatched)),
	)

	c.JSON(http.StatusOK, result)
}

// HandleWeatherSuggestions 依城市天氣推薦食譜
func (h *Handler) HandleWeatherSuggestions(c *gin.Context) {
	result := h.services.Weather.Suggest(c.Request.Context(), c.Query("city"))
	c.JSON(http.StatusOK, result)
}
