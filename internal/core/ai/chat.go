package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ChatClient OpenAI 相容的 chat/completions 客戶端（Together、OpenRouter）
type ChatClient struct {
	config *config.AIConfig
	client *resty.Client
}

// chatRequest chat/completions 請求
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
}

// chatResponse chat/completions 回應
type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// chatError API 錯誤格式
type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewChatClient 建立 chat/completions 客戶端
func NewChatClient(cfg *config.AIConfig) *ChatClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	if strings.Contains(cfg.BaseURL, "openrouter.ai") {
		client.SetHeader("HTTP-Referer", "https://recipe-browser.local").
			SetHeader("X-Title", "Recipe Browser")
	}

	common.LogInfo("Chat completions 客戶端已初始化",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.String("api_key", config.MaskAPIKey(cfg.APIKey)),
	)

	return &ChatClient{
		config: cfg,
		client: client,
	}
}

// Generate 呼叫 /chat/completions
func (c *ChatClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	body := chatRequest{
		Model:       c.config.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	common.LogUpstreamCall("chat_completions", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		var apiErr chatError
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("chat API returned %d: %s", resp.StatusCode(), apiErr.Error.Message)
		}
		return nil, fmt.Errorf("chat API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in chat response")
	}

	return &Response{
		Content: result.Choices[0].Message.Content,
		Usage:   result.Usage,
	}, nil
}

// GetModel 模型名稱
func (c *ChatClient) GetModel() string {
	return c.config.Model
}

// Close resty 不需要釋放資源
func (c *ChatClient) Close() error {
	return nil
}
