package recipe

import (
	"fmt"

	"recipe-browser/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// getRequestID 取得請求 ID，沒有時產生一個並寫回響應標頭
func getRequestID(c *gin.Context) string {
	if id := requestid.Get(c); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	id := uuid.New().String()
	c.Header("X-Request-ID", id)
	return id
}

// respondError 將錯誤轉為統一的 JSON 錯誤響應
func (h *Handler) respondError(c *gin.Context, requestID string, err error) {
	ce := common.AsCustomError(err)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("code", ce.Code),
		zap.Error(err),
	}
	if ce.Status >= 500 {
		common.LogError("請求處理失敗", fields...)
	} else {
		common.LogWarn("請求無效", fields...)
	}

	c.AbortWithStatusJSON(ce.Status, ce.Response(h.debug))
}

// bindJSON 解析請求體，失敗時轉為 400
func bindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return common.ErrInvalidRequest.Wrap(err)
	}
	return nil
}

// checkServings 份量必須介於 1 與上限之間
func (h *Handler) checkServings(servings int) error {
	if servings < 1 || servings > h.maxServings {
		return common.NewError(
			common.ErrInvalidServings.Code,
			fmt.Sprintf("份量必須介於 1 到 %d 之間", h.maxServings),
			common.ErrInvalidServings.Status,
			fmt.Errorf("servings %d is outside 1..%d", servings, h.maxServings),
		)
	}
	return nil
}
