package nutrition

import (
	"context"
	"strings"

	"recipe-browser/internal/core/cache"
	"recipe-browser/internal/core/scaling"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const noticePartial = "nutrition data is unavailable for some ingredients"

// gramsPerUnit 換算成公克，液體以 1ml ≈ 1g 估算
var gramsPerUnit = map[string]float64{
	"cup":  240,
	"tbsp": 15,
	"tsp":  5,
	"oz":   28.35,
	"lb":   453.59,
	"ml":   1,
	"l":    1000,
	"g":    1,
	"kg":   1000,
}

// nutrientNames USDA 營養素名稱（以包含比對）
const (
	nutrientEnergy  = "Energy"
	nutrientProtein = "Protein"
	nutrientFat     = "Total lipid (fat)"
	nutrientCarbs   = "Carbohydrate, by difference"
	nutrientSodium  = "Sodium, Na"
	nutrientFiber   = "Fiber, total dietary"
)

// Info 營養資訊
type Info struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Sodium   float64 `json:"sodium"`
	Fiber    float64 `json:"fiber"`
}

// Result 每份營養資訊與查無資料的食材
type Result struct {
	PerServing Info     `json:"per_serving"`
	Servings   int      `json:"servings"`
	Unmatched  []string `json:"unmatched,omitempty"`
	Notice     string   `json:"notice,omitempty"`
}

// FoodSearcher 查詢食物營養資料
type FoodSearcher interface {
	SearchFood(ctx context.Context, name string) (*Food, error)
}

// Calculator 食譜營養計算
type Calculator struct {
	searcher FoodSearcher
	cache    cache.Store
	workers  int
}

// NewCalculator 建立計算器，store 可為 nil
func NewCalculator(searcher FoodSearcher, store cache.Store, workers int) *Calculator {
	if workers < 1 {
		workers = 1
	}
	return &Calculator{
		searcher: searcher,
		cache:    store,
		workers:  workers,
	}
}

// Calculate 依食材清單計算每份營養
// 單一食材查詢失敗只記錄並略過
func (c *Calculator) Calculate(ctx context.Context, ingredients []string, servings int) (*Result, error) {
	if servings < 1 {
		return nil, common.NewValidationError("servings must be at least 1")
	}

	type lookup struct {
		per100g Info
		found   bool
	}
	lookups := make([]lookup, len(ingredients))
	grams := make([]float64, len(ingredients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, line := range ingredients {
		name, amount := ParseQuantity(line)
		grams[i] = amount
		if name == "" {
			continue
		}

		g.Go(func() error {
			info, found, err := c.per100g(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				common.LogWarn("營養查詢失敗",
					zap.String("ingredient", name),
					zap.Error(err),
				)
				return nil
			}
			lookups[i] = lookup{per100g: info, found: found}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total Info
	result := &Result{Servings: servings}
	for i, l := range lookups {
		if !l.found {
			result.Unmatched = append(result.Unmatched, ingredients[i])
			continue
		}
		factor := grams[i] / 100
		total.Calories += l.per100g.Calories * factor
		total.Protein += l.per100g.Protein * factor
		total.Fat += l.per100g.Fat * factor
		total.Carbs += l.per100g.Carbs * factor
		total.Sodium += l.per100g.Sodium * factor
		total.Fiber += l.per100g.Fiber * factor
	}

	n := float64(servings)
	result.PerServing = Info{
		Calories: scaling.Round2(total.Calories / n),
		Protein:  scaling.Round2(total.Protein / n),
		Fat:      scaling.Round2(total.Fat / n),
		Carbs:    scaling.Round2(total.Carbs / n),
		Sodium:   scaling.Round2(total.Sodium / n),
		Fiber:    scaling.Round2(total.Fiber / n),
	}
	if len(result.Unmatched) > 0 {
		result.Notice = noticePartial
	}
	return result, nil
}

// per100g 先查快取，再查 USDA
func (c *Calculator) per100g(ctx context.Context, name string) (Info, bool, error) {
	key := common.HashKey("nutrition", strings.ToLower(name))

	if c.cache != nil {
		var cached Info
		found, err := cache.GetJSON(ctx, c.cache, key, &cached)
		if err == nil && found {
			common.LogCacheHit("nutrition")
			return cached, true, nil
		}
		common.LogCacheMiss("nutrition")
	}

	food, err := c.searcher.SearchFood(ctx, name)
	if err != nil {
		return Info{}, false, err
	}
	if food == nil {
		return Info{}, false, nil
	}

	info := ExtractNutrients(food)
	if c.cache != nil {
		if err := cache.SetJSON(ctx, c.cache, key, info); err != nil {
			common.LogWarn("寫入營養快取失敗", zap.Error(err))
		}
	}
	return info, true, nil
}

// ParseQuantity 解析食材名稱與公克數，無數量時視為 1 份
// 未知單位直接以數量當作公克
func ParseQuantity(line string) (string, float64) {
	parsed := scaling.Parse(line)
	quantity, ok := parsed.Amount.Value()
	if !ok {
		quantity = 1
	}
	if factor, known := gramsPerUnit[strings.ToLower(parsed.Unit)]; known {
		return parsed.Name, quantity * factor
	}
	return parsed.Name, quantity
}

// ExtractNutrients 取出每 100g 的主要營養素
func ExtractNutrients(food *Food) Info {
	return Info{
		Calories: nutrientValue(food.FoodNutrients, nutrientEnergy),
		Protein:  nutrientValue(food.FoodNutrients, nutrientProtein),
		Fat:      nutrientValue(food.FoodNutrients, nutrientFat),
		Carbs:    nutrientValue(food.FoodNutrients, nutrientCarbs),
		Sodium:   nutrientValue(food.FoodNutrients, nutrientSodium),
		Fiber:    nutrientValue(food.FoodNutrients, nutrientFiber),
	}
}

func nutrientValue(nutrients []FoodNutrient, name string) float64 {
	lower := strings.ToLower(name)
	for _, n := range nutrients {
		if strings.Contains(strings.ToLower(n.NutrientName), lower) {
			return n.Value
		}
	}
	return 0
}
