package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient Google Gemini 客戶端
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	name    string
	timeout time.Duration
}

// NewGeminiClient 建立 Gemini 客戶端
func NewGeminiClient(ctx context.Context, cfg *config.AIConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	name := cfg.Model
	if name == "" || strings.Contains(name, "/") {
		// chat 供應商的模型名稱（org/model）對 Gemini 無效
		name = defaultGeminiModel
	}

	model := client.GenerativeModel(name)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}
	model.SetTemperature(float32(cfg.Temperature))

	common.LogInfo("Gemini 客戶端已初始化",
		zap.String("model", name),
		zap.String("api_key", config.MaskAPIKey(cfg.APIKey)),
	)

	return &GeminiClient{
		client:  client,
		model:   model,
		name:    name,
		timeout: cfg.Timeout,
	}, nil
}

// Generate 將所有訊息合併為文字片段送出
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	parts := make([]genai.Part, 0, len(req.Messages))
	for _, m := range req.Messages {
		parts = append(parts, genai.Text(m.Content))
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, parts...)
	common.LogUpstreamCall("gemini", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	out := &Response{Content: b.String()}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// GetModel 模型名稱
func (c *GeminiClient) GetModel() string {
	return c.name
}

// Close 關閉 gRPC 連線
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
