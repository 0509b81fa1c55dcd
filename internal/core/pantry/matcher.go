package pantry

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"recipe-browser/internal/core/catalog"
	"recipe-browser/internal/core/scaling"
)

const maxMatches = 5

var punctuation = regexp.MustCompile(`[^\w\s]`)

// descriptors 比對時略過的形容詞
var descriptors = map[string]bool{
	"small": true, "medium": true, "large": true, "big": true,
	"fresh": true, "green": true, "red": true, "thick": true,
	"cooked": true, "chopped": true, "raw": true, "dried": true,
}

// PantryItem 使用者手邊的食材
type PantryItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" binding:"required"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Category string   `json:"category"`
}

// RecipeMatch 食譜比對結果
type RecipeMatch struct {
	Recipe               catalog.Recipe `json:"recipe"`
	MatchPercentage      int            `json:"match_percentage"`
	AvailableIngredients []string       `json:"available_ingredients"`
	MissingIngredients   []string       `json:"missing_ingredients"`
}

// Lister 提供候選食譜
type Lister interface {
	List(ctx context.Context) []catalog.Recipe
}

// Matcher 依手邊食材找出可做的食譜
type Matcher struct {
	recipes Lister
}

// NewMatcher 建立比對器
func NewMatcher(recipes Lister) *Matcher {
	return &Matcher{recipes: recipes}
}

// FindMatches 回傳至少有一項食材相符的食譜，依比對率由高到低，最多 5 筆
func (m *Matcher) FindMatches(ctx context.Context, items []PantryItem) []RecipeMatch {
	pantry := make([]string, 0, len(items))
	for _, item := range items {
		if key := Normalize(item.Name); key != "" {
			pantry = append(pantry, key)
		}
	}

	matches := []RecipeMatch{}
	if len(pantry) == 0 {
		return matches
	}

	for _, r := range m.recipes.List(ctx) {
		if len(r.Ingredients) == 0 {
			continue
		}

		available := []string{}
		missing := []string{}
		for _, line := range r.Ingredients {
			if isAvailable(Normalize(line), pantry) {
				available = append(available, line)
			} else {
				missing = append(missing, line)
			}
		}

		if len(available) == 0 {
			continue
		}
		percentage := int(math.Round(float64(len(available)) / float64(len(r.Ingredients)) * 100))

		matches = append(matches, RecipeMatch{
			Recipe:               r,
			MatchPercentage:      percentage,
			AvailableIngredients: available,
			MissingIngredients:   missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// Normalize 取出食材的比對關鍵字：去掉數量與單位、標點與形容詞後的第一個字
func Normalize(line string) string {
	name := strings.ToLower(scaling.Parse(line).Name)
	name = punctuation.ReplaceAllString(name, "")
	for _, word := range strings.Fields(name) {
		if !descriptors[word] {
			return word
		}
	}
	return ""
}

// isAvailable 任一手邊食材與關鍵字互相包含
func isAvailable(key string, pantry []string) bool {
	if key == "" {
		return false
	}
	for _, p := range pantry {
		if strings.Contains(p, key) || strings.Contains(key, p) {
			return true
		}
	}
	return false
}
