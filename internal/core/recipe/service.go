package recipe

import (
	"context"

	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/core/rewrite"
	"recipe-browser/internal/core/scaling"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	noticeRemoteDisabled = "remote step rewriting is not configured, local rules were used"
	noticeRemoteFailed   = "remote step rewriting failed, local rules were used"
	noticeLocalFailed    = "step rewriting failed, original steps are shown"
)

// Catalog 食譜來源
type Catalog interface {
	Get(ctx context.Context, id string) (catalog.Recipe, error)
}

// AdjustRequest 調整目錄食譜份量的請求
type AdjustRequest struct {
	RecipeID  string
	Servings  int
	UseRemote bool
}

// ScaleRequest 調整任意食材與步驟的請求
type ScaleRequest struct {
	Name         string
	Ingredients  []string
	Instructions []string
	CookingTime  int
	Servings     int
	UseRemote    bool
}

// AdjustedRecipe 調整後的食譜
type AdjustedRecipe struct {
	RecipeID            string                     `json:"recipe_id,omitempty"`
	Name                string                     `json:"name"`
	Servings            int                        `json:"servings"`
	OriginalCookingTime int                        `json:"original_cooking_time"`
	CookingTime         int                        `json:"cooking_time"`
	Ingredients         []scaling.ScaledIngredient `json:"ingredients"`
	Instructions        []string                   `json:"instructions"`
	RewriteSource       rewrite.Source             `json:"rewrite_source"`
	Notice              string                     `json:"notice,omitempty"`
}

// Service 份量調整服務
// 依序嘗試遠端改寫、本地規則，最後保留原始步驟
type Service struct {
	catalog Catalog
	local   rewrite.StepRewriter
	remote  rewrite.StepRewriter
}

// NewService 建立服務，remote 為 nil 代表未啟用遠端改寫
func NewService(cat Catalog, local, remote rewrite.StepRewriter) *Service {
	return &Service{
		catalog: cat,
		local:   local,
		remote:  remote,
	}
}

// RemoteEnabled 是否設定了遠端改寫
func (s *Service) RemoteEnabled() bool {
	return s.remote != nil
}

// Adjust 調整目錄中的食譜
func (s *Service) Adjust(ctx context.Context, req AdjustRequest) (*AdjustedRecipe, error) {
	if req.Servings < 1 {
		return nil, common.NewValidationError("servings must be at least 1")
	}

	r, err := s.catalog.Get(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}

	out := s.adjust(ctx, r.Name, r.Ingredients, r.Instructions, r.CookingTime, req.Servings, req.UseRemote)
	out.RecipeID = r.ID
	return out, nil
}

// ScaleLines 調整不在目錄中的食材與步驟
func (s *Service) ScaleLines(ctx context.Context, req ScaleRequest) (*AdjustedRecipe, error) {
	if req.Servings < 1 {
		return nil, common.NewValidationError("servings must be at least 1")
	}
	if req.CookingTime < 0 {
		return nil, common.NewValidationError("cooking_time must not be negative")
	}
	return s.adjust(ctx, req.Name, req.Ingredients, req.Instructions, req.CookingTime, req.Servings, req.UseRemote), nil
}

func (s *Service) adjust(ctx context.Context, name string, ingredients, steps []string, cookingTime, servings int, useRemote bool) *AdjustedRecipe {
	scaled := scaling.ScaleAll(ingredients, servings)

	rewritten, source, notice := s.rewriteSteps(ctx, rewrite.Request{
		RecipeName:  name,
		Steps:       steps,
		Ingredients: scaled,
		Servings:    servings,
	}, useRemote)

	common.LogDebug("食譜份量已調整",
		zap.String("recipe", name),
		zap.Int("servings", servings),
		zap.String("source", string(source)),
	)

	return &AdjustedRecipe{
		Name:                name,
		Servings:            servings,
		OriginalCookingTime: cookingTime,
		CookingTime:         scaling.ScaleCookingTime(float64(cookingTime), servings),
		Ingredients:         scaled,
		Instructions:        rewritten,
		RewriteSource:       source,
		Notice:              notice,
	}
}

// rewriteSteps 遠端 → 本地 → 原始步驟
func (s *Service) rewriteSteps(ctx context.Context, req rewrite.Request, useRemote bool) ([]string, rewrite.Source, string) {
	var notice string

	if useRemote {
		if s.remote == nil {
			notice = noticeRemoteDisabled
		} else {
			steps, err := s.remote.Rewrite(ctx, req)
			if err == nil && len(steps) > 0 {
				return steps, rewrite.SourceRemote, ""
			}
			common.LogWarn("遠端步驟改寫失敗，改用本地規則",
				zap.String("recipe", req.RecipeName),
				zap.Error(err),
			)
			notice = noticeRemoteFailed
		}
	}

	if s.local != nil {
		steps, err := s.local.Rewrite(ctx, req)
		if err == nil && (len(steps) > 0 || len(req.Steps) == 0) {
			return steps, rewrite.SourceLocal, notice
		}
		common.LogWarn("本地步驟改寫失敗，保留原始步驟",
			zap.String("recipe", req.RecipeName),
			zap.Error(err),
		)
	}

	return append([]string{}, req.Steps...), rewrite.SourceOriginal, noticeLocalFailed
}
