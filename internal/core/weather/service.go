package weather

import (
	"context"
	"strings"
	"time"

	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	maxRecipes = 6
	maxAge     = 10 * time.Minute

	noticeUnavailable   = "weather service is unavailable, showing default suggestion"
	noticeNotConfigured = "weather service is not configured, showing default suggestion"
)

// conditionTags 天氣狀況對應的料理標籤
var conditionTags = map[string][]string{
	"rain":         {"warm", "soup", "rasam", "comfort", "spicy"},
	"drizzle":      {"warm", "soup", "rasam", "comfort"},
	"snow":         {"warm", "hearty", "comfort", "spicy"},
	"clear":        {"light", "fresh", "salad", "cold"},
	"clouds":       {"comfort", "medium"},
	"thunderstorm": {"warm", "comfort", "rasam", "soup"},
	"mist":         {"warm", "light"},
	"fog":          {"warm", "comfort"},
}

// Suggestion 依天氣產生的建議
type Suggestion struct {
	Weather       string   `json:"weather"`
	Temperature   float64  `json:"temperature"`
	Condition     string   `json:"condition"`
	SuggestedTags []string `json:"suggested_tags"`
	Notice        string   `json:"notice,omitempty"`
}

// Result 天氣建議與推薦食譜
type Result struct {
	Suggestion Suggestion       `json:"suggestion"`
	Recipes    []catalog.Recipe `json:"recipes"`
}

// Provider 查詢目前天氣
type Provider interface {
	CurrentWeather(ctx context.Context, city string) (*Current, error)
}

// Lister 提供候選食譜
type Lister interface {
	List(ctx context.Context) []catalog.Recipe
}

type cachedCurrent struct {
	Current   Current   `json:"current"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Service 天氣建議服務
type Service struct {
	provider    Provider
	recipes     Lister
	cache       cache.Store
	defaultCity string
	now         func() time.Time
}

// NewService 建立天氣建議服務
// provider 為 nil 時一律回傳預設建議；store 可為 nil
func NewService(provider Provider, recipes Lister, store cache.Store, defaultCity string) *Service {
	return &Service{
		provider:    provider,
		recipes:     recipes,
		cache:       store,
		defaultCity: defaultCity,
		now:         time.Now,
	}
}

// Suggest 取得城市天氣建議與推薦食譜，city 為空時使用預設城市
func (s *Service) Suggest(ctx context.Context, city string) *Result {
	suggestion := s.Current(ctx, city)
	return &Result{
		Suggestion: suggestion,
		Recipes:    s.RecipesFor(ctx, suggestion.SuggestedTags),
	}
}

// Current 取得天氣建議，任何失敗都回傳預設建議
func (s *Service) Current(ctx context.Context, city string) Suggestion {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.defaultCity
	}

	if s.provider == nil {
		suggestion := DefaultSuggestion()
		suggestion.Notice = noticeNotConfigured
		return suggestion
	}

	current, err := s.fetch(ctx, city)
	if err != nil {
		common.LogWarn("取得天氣失敗，使用預設建議",
			zap.String("city", city),
			zap.Error(err),
		)
		suggestion := DefaultSuggestion()
		suggestion.Notice = noticeUnavailable
		return suggestion
	}

	return Suggestion{
		Weather:       current.Main,
		Temperature:   current.Temperature,
		Condition:     current.Description,
		SuggestedTags: TagsFor(current.Main, current.Temperature),
	}
}

// fetch 先查快取（10 分鐘內有效），再查天氣服務
func (s *Service) fetch(ctx context.Context, city string) (*Current, error) {
	key := common.HashKey("weather", strings.ToLower(city))

	if s.cache != nil {
		var cached cachedCurrent
		found, err := cache.GetJSON(ctx, s.cache, key, &cached)
		if err == nil && found && s.now().Sub(cached.FetchedAt) < maxAge {
			common.LogCacheHit("weather")
			return &cached.Current, nil
		}
		common.LogCacheMiss("weather")
	}

	current, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		entry := cachedCurrent{Current: *current, FetchedAt: s.now()}
		if err := cache.SetJSON(ctx, s.cache, key, entry); err != nil {
			common.LogWarn("寫入天氣快取失敗", zap.Error(err))
		}
	}
	return current, nil
}

// DefaultSuggestion 天氣無法取得時的建議
func DefaultSuggestion() Suggestion {
	return Suggestion{
		Weather:       "Clear",
		Temperature:   25,
		Condition:     "pleasant weather",
		SuggestedTags: []string{"medium", "balanced"},
	}
}

// TagsFor 合併天氣與氣溫標籤，去除重複並保留順序
func TagsFor(condition string, temperature float64) []string {
	weatherTags, ok := conditionTags[strings.ToLower(condition)]
	if !ok {
		weatherTags = []string{"medium"}
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, len(weatherTags)+4)
	for _, tag := range append(append([]string{}, weatherTags...), temperatureTags(temperature)...) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func temperatureTags(temperature float64) []string {
	switch {
	case temperature > 30:
		return []string{"cold", "light", "fresh", "cooling"}
	case temperature > 20:
		return []string{"medium", "balanced"}
	case temperature > 10:
		return []string{"warm", "comfort"}
	default:
		return []string{"hot", "spicy", "warming", "hearty"}
	}
}

// RecipesFor 依標籤挑選食譜，最多 6 筆；都不符合時回傳前 6 筆
func (s *Service) RecipesFor(ctx context.Context, tags []string) []catalog.Recipe {
	all := s.recipes.List(ctx)

	matching := []catalog.Recipe{}
	for _, r := range all {
		if matchesAnyTag(r, tags) {
			matching = append(matching, r)
		}
	}

	if len(matching) == 0 {
		matching = all
	}
	if len(matching) > maxRecipes {
		matching = matching[:maxRecipes]
	}
	return matching
}

func matchesAnyTag(r catalog.Recipe, tags []string) bool {
	text := strings.ToLower(strings.Join([]string{r.Name, r.Category, r.TamilName}, " "))
	isRasam := strings.Contains(text, "rasam")

	for _, tag := range tags {
		if strings.Contains(text, tag) {
			return true
		}
		switch tag {
		case "warm", "comfort", "rasam":
			if isRasam {
				return true
			}
		}
	}
	return false
}
