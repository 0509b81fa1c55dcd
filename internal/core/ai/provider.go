package ai

import (
	"context"
	"fmt"

	"recipe-browser/internal/infrastructure/config"
)

// Message 對話訊息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 送往模型的請求
type Request struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
}

// Usage 使用量
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response 模型回應
type Response struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Provider 文字生成服務
type Provider interface {
	// Generate 產生回應
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 目前使用的模型名稱
	GetModel() string

	// Close 關閉連線
	Close() error
}

// NewProvider 依設定建立 chat 或 gemini 提供者
func NewProvider(ctx context.Context, cfg *config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "chat", "":
		return NewChatClient(cfg), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
