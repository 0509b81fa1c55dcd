package catalog

import (
	"context"
	"strings"

	"recipe-browser/internal/pkg/common"
)

// Recipe 食譜
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	TamilName    string   `json:"tamil_name"`
	Category     string   `json:"category"`
	FoodType     string   `json:"food_type"`
	CookingTime  int      `json:"cooking_time"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     string   `json:"image_url"`
	VideoURL     string   `json:"video_url,omitempty"`
}

// Catalog 唯讀的食譜目錄
type Catalog struct {
	recipes []Recipe
}

// New 以內建食譜建立目錄
func New() *Catalog {
	return NewWithRecipes(defaultRecipes)
}

// NewWithRecipes 以指定食譜建立目錄
func NewWithRecipes(recipes []Recipe) *Catalog {
	c := &Catalog{recipes: make([]Recipe, len(recipes))}
	for i, r := range recipes {
		c.recipes[i] = r.clone()
	}
	return c
}

// Get 依 id 取得食譜
func (c *Catalog) Get(_ context.Context, id string) (Recipe, error) {
	for _, r := range c.recipes {
		if r.ID == id {
			return r.clone(), nil
		}
	}
	return Recipe{}, common.ErrRecipeNotFound
}

// List 依原順序列出所有食譜
func (c *Catalog) List(_ context.Context) []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.clone()
	}
	return out
}

// Search 名稱、在地名稱或分類包含關鍵字（不分大小寫），空字串回傳全部
func (c *Catalog) Search(ctx context.Context, query string) []Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.List(ctx)
	}

	out := []Recipe{}
	for _, r := range c.recipes {
		if r.Matches(q) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Matches 任一欄位包含小寫關鍵字
func (r Recipe) Matches(lowerTerm string) bool {
	return strings.Contains(strings.ToLower(r.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(r.TamilName), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Category), lowerTerm)
}

func (r Recipe) clone() Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	return r
}
