package nutrition

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Food USDA FoodData Central 的食物資料
type Food struct {
	FdcID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

// FoodNutrient 每 100g 的營養素
type FoodNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}

// searchResponse /foods/search 回應
type searchResponse struct {
	TotalHits int    `json:"totalHits"`
	Foods     []Food `json:"foods"`
}

// Client USDA FoodData Central 客戶端
type Client struct {
	config *config.NutritionConfig
	client *resty.Client
}

// NewClient 建立 USDA 客戶端
func NewClient(cfg *config.NutritionConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// SearchFood 搜尋食物並回傳第一筆結果，查無資料時回傳 nil
func (c *Client) SearchFood(ctx context.Context, name string) (*Food, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    name,
			"api_key":  c.config.APIKey,
			"pageSize": "1",
		}).
		Get("/foods/search")
	common.LogUpstreamCall("usda", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query USDA: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, common.ErrUpstreamError.Wrap(fmt.Errorf("USDA API returned status %d", resp.StatusCode()))
	}

	var result searchResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse USDA response: %w", err)
	}

	if len(result.Foods) == 0 {
		return nil, nil
	}
	return &result.Foods[0], nil
}
