package ai

import (
	"context"
	"fmt"
	"strings"

	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/core/rewrite"
	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

const systemPrompt = "You are a professional chef assistant. Rewrite cooking instructions to match adjusted ingredient quantities " +
	"while maintaining the same cooking techniques and order. Keep the same number of steps and similar structure. " +
	"Be precise with measurements and cooking times."

// RemoteRewriter 透過文字生成模型改寫步驟
type RemoteRewriter struct {
	provider Provider
	cache    cache.Store
	config   *config.AIConfig
}

// NewRemoteRewriter 建立遠端改寫器，store 可為 nil
func NewRemoteRewriter(provider Provider, store cache.Store, cfg *config.AIConfig) *RemoteRewriter {
	return &RemoteRewriter{
		provider: provider,
		cache:    store,
		config:   cfg,
	}
}

// Name 改寫器名稱
func (r *RemoteRewriter) Name() string {
	return string(rewrite.SourceRemote)
}

// Rewrite 送出提示詞並解析步驟，結果依提示詞雜湊快取
func (r *RemoteRewriter) Rewrite(ctx context.Context, req rewrite.Request) ([]string, error) {
	messages := BuildMessages(req)
	key := common.HashKey("rewrite", r.provider.GetModel(), messages[0].Content, messages[1].Content)

	if r.cache != nil {
		var cached []string
		found, err := cache.GetJSON(ctx, r.cache, key, &cached)
		if err != nil {
			common.LogWarn("讀取改寫快取失敗", zap.Error(err))
		}
		if found && len(cached) > 0 {
			common.LogCacheHit("rewrite")
			return cached, nil
		}
		common.LogCacheMiss("rewrite")
	}

	resp, err := r.provider.Generate(ctx, &Request{
		Messages:    messages,
		MaxTokens:   r.config.MaxTokens,
		Temperature: r.config.Temperature,
		TopP:        0.9,
	})
	if err != nil {
		return nil, common.ErrAIServiceError.Wrap(err)
	}

	steps, err := ParseSteps(resp.Content)
	if err != nil {
		return nil, common.ErrAIServiceError.Wrap(err)
	}

	common.LogInfo("遠端步驟改寫完成",
		zap.String("recipe", req.RecipeName),
		zap.Int("steps", len(steps)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	if r.cache != nil {
		if err := cache.SetJSON(ctx, r.cache, key, steps); err != nil {
			common.LogWarn("寫入改寫快取失敗", zap.Error(err))
		}
	}
	return steps, nil
}

// BuildMessages 組合系統與使用者訊息
func BuildMessages(req rewrite.Request) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n", req.RecipeName)
	fmt.Fprintf(&b, "Servings: %d\n\n", req.Servings)

	b.WriteString("Adjusted ingredients:\n")
	for _, ing := range req.Ingredients {
		parts := []string{ing.FormattedAmount}
		if ing.Unit != "" && ing.Amount.IsSet() {
			parts = append(parts, ing.Unit)
		}
		parts = append(parts, ing.Name)
		fmt.Fprintf(&b, "- %s\n", strings.Join(parts, " "))
	}

	b.WriteString("\nOriginal steps:\n")
	for i, step := range req.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\nRewrite each step for the adjusted quantities. ")
	b.WriteString("Return only the numbered steps, one per line, in the same order.")

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
