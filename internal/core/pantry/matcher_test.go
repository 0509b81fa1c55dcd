package pantry

import (
	"context"
	"testing"

	"recipe-browser/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(names ...string) []PantryItem {
	out := make([]PantryItem, len(names))
	for i, n := range names {
		out[i] = PantryItem{ID: n, Name: n, Category: "other"}
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"1 cup cooked rice":          "rice",
		"1/2 cup thick curd/yogurt":  "curdyogurt",
		"2 medium tomatoes, chopped": "tomatoes",
		"Salt to taste":              "salt",
		"Few curry leaves":           "curry",
		"250g chicken":               "chicken",
		"Fresh":                      "",
		"":                           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestFindMatches(t *testing.T) {
	m := NewMatcher(catalog.New())
	got := m.FindMatches(context.Background(), items("rice", "curd", "milk", "mustard", "oil", "salt"))

	require.Len(t, got, 4)
	assert.Equal(t, "Curd Rice", got[0].Recipe.Name)
	assert.Equal(t, 60, got[0].MatchPercentage)
	assert.Equal(t, "Sambar", got[1].Recipe.Name)
	assert.Equal(t, 25, got[1].MatchPercentage)
	assert.Equal(t, "Tomato Rasam", got[2].Recipe.Name)
	assert.Equal(t, 18, got[2].MatchPercentage)
	assert.Equal(t, "Chicken Curry", got[3].Recipe.Name)
	assert.Equal(t, 8, got[3].MatchPercentage)

	curdRice := got[0]
	assert.Len(t, curdRice.AvailableIngredients, 6)
	assert.Len(t, curdRice.MissingIngredients, 4)
	assert.Contains(t, curdRice.AvailableIngredients, "1/4 cup milk")
	assert.Contains(t, curdRice.MissingIngredients, "1 inch ginger, minced")

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MatchPercentage, got[i].MatchPercentage)
	}
}

func TestFindMatchesCapsResults(t *testing.T) {
	recipes := make([]catalog.Recipe, 0, 8)
	for i := 0; i < 8; i++ {
		recipes = append(recipes, catalog.Recipe{
			ID:          string(rune('a' + i)),
			Name:        "dish",
			Ingredients: []string{"1 cup rice"},
		})
	}
	got := NewMatcher(catalog.NewWithRecipes(recipes)).FindMatches(context.Background(), items("rice"))
	assert.Len(t, got, 5)
	assert.Equal(t, "a", got[0].Recipe.ID)
}

func TestFindMatchesNoPantry(t *testing.T) {
	m := NewMatcher(catalog.New())
	assert.Empty(t, m.FindMatches(context.Background(), nil))
	assert.Empty(t, m.FindMatches(context.Background(), items("   ", "!!")))
	assert.Empty(t, m.FindMatches(context.Background(), items("saffron")))
}

func TestFindMatchesKeepsSmallRatios(t *testing.T) {
	ingredients := []string{"1 cup rice"}
	for i := 0; i < 200; i++ {
		ingredients = append(ingredients, "1 tsp saffron")
	}
	recipes := []catalog.Recipe{{ID: "big", Name: "Feast", Ingredients: ingredients}}

	got := NewMatcher(catalog.NewWithRecipes(recipes)).FindMatches(context.Background(), items("rice"))
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].MatchPercentage)
	assert.Len(t, got[0].AvailableIngredients, 1)
	assert.Len(t, got[0].MissingIngredients, 200)
}
