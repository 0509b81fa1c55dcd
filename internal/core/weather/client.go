package weather

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

// Current OpenWeatherMap 目前天氣
type Current struct {
	Main        string  `json:"main"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
}

// currentResponse /weather 回應中用到的欄位
type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Client OpenWeatherMap 客戶端
type Client struct {
	config *config.WeatherConfig
	client *resty.Client
}

// NewClient 建立天氣客戶端
func NewClient(cfg *config.WeatherConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Configured 是否已設定 API 金鑰
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// CurrentWeather 查詢城市目前天氣（攝氏）
func (c *Client) CurrentWeather(ctx context.Context, city string) (*Current, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.config.APIKey,
			"units": "metric",
		}).
		Get("/weather")
	common.LogUpstreamCall("openweather", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query weather: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, common.ErrUpstreamError.Wrap(fmt.Errorf("weather API returned status %d", resp.StatusCode()))
	}

	var result currentResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	if len(result.Weather) == 0 {
		return nil, fmt.Errorf("weather response has no conditions")
	}

	return &Current{
		Main:        result.Weather[0].Main,
		Description: result.Weather[0].Description,
		Temperature: result.Main.Temp,
	}, nil
}
