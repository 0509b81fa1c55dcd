package rewrite

import (
	"context"

	"recipe-browser/internal/core/scaling"
)

// Source 實際產生步驟的來源
type Source string

const (
	SourceRemote   Source = "remote"
	SourceLocal    Source = "local"
	SourceOriginal Source = "original"
)

// Request 改寫步驟所需的輸入
type Request struct {
	RecipeName  string
	Steps       []string
	Ingredients []scaling.ScaledIngredient
	Servings    int
}

// StepRewriter 步驟改寫器
// 本地規則與遠端模型都實作此介面
type StepRewriter interface {
	Rewrite(ctx context.Context, req Request) ([]string, error)
	Name() string
}
