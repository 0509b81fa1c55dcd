package rewrite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-browser/internal/core/scaling"
)

var tomatoRasamIngredients = []string{
	"2 medium tomatoes, chopped",
	"1/4 cup toor dal (cooked)",
	"1 tsp tamarind paste",
	"1/2 tsp turmeric powder",
	"1 tsp rasam powder",
	"2-3 curry leaves",
	"1 green chili, slit",
	"1/2 tsp mustard seeds",
	"1 tsp ghee",
	"Salt to taste",
	"Fresh coriander for garnish",
}

func rewriteOne(t *testing.T, step string, ingredients []string, servings int) string {
	t.Helper()
	out, err := NewLocalRewriter().Rewrite(context.Background(), Request{
		Steps:       []string{step},
		Ingredients: scaling.ScaleAll(ingredients, servings),
		Servings:    servings,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

func TestLocalRewriterTomatoRasam(t *testing.T) {
	tests := []struct {
		step string
		want string
	}{
		{
			"Heat ghee in a pan and add mustard seeds",
			"Heat ghee in a pan and add 1.1 tsp mustard seeds",
		},
		{
			"When seeds splutter, add curry leaves and green chili",
			"When seeds splutter, add 5.5 curry leaves and 3 green chili",
		},
		{
			"Add chopped tomatoes and cook until soft",
			"Add chopped 6 medium tomatoes and cook until soft",
		},
		{
			"Add turmeric, rasam powder, and salt",
			"Add 1.1 tsp turmeric powder, rasam powder, and salt",
		},
		{
			"Add cooked toor dal and mix well",
			"Add cooked 3/4 cup toor dal and mix well",
		},
		{
			"Add tamarind paste and 1 cup water",
			"Add 3 tsp tamarind paste and 3 cup water",
		},
		{
			"Bring to a boil and simmer for 10 minutes",
			"Bring to a boil and simmer for 13 minutes",
		},
		{
			"Garnish with fresh coriander and serve hot",
			"Garnish with fresh coriander and serve hot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteOne(t, tt.step, tomatoRasamIngredients, 3))
		})
	}
}

func TestLocalRewriterQuantityMatch(t *testing.T) {
	ingredients := []string{"1/2 tsp sugar", "1/2 tsp turmeric powder"}

	assert.Equal(t, "Add 1.1 tsp turmeric", rewriteOne(t, "Add 1/2 tsp turmeric", ingredients, 3))
	assert.Equal(t, "Add 1.5 tsp sugar", rewriteOne(t, "Add 1/2 tsp sugar", ingredients, 3))
}

func TestLocalRewriterQuantityFallback(t *testing.T) {
	assert.Equal(t, "Pour 1/2 cup stock", rewriteOne(t, "Pour 1/4 cup stock", nil, 2))
	assert.Equal(t, "Pour 6 cups stock", rewriteOne(t, "Pour 2 cups stock", nil, 3))
}

func TestLocalRewriterTime(t *testing.T) {
	assert.Equal(t, "Simmer for 32 mins", rewriteOne(t, "Simmer for 25 mins", nil, 3))
	assert.Equal(t, "Simmer for 25 mins", rewriteOne(t, "Simmer for 25 mins", nil, 1))
	assert.Equal(t, "Rest 36 seconds", rewriteOne(t, "Rest 25 seconds", nil, 4))
}

func TestLocalRewriterTimeAtOneServing(t *testing.T) {
	assert.Equal(t, "Simmer 1.5 minutes", rewriteOne(t, "Simmer 1.5 minutes", nil, 1))
	assert.Equal(t, "Cook 5-6 minutes", rewriteOne(t, "Cook 5-6 minutes", nil, 1))
}

func TestLocalRewriterTimeRange(t *testing.T) {
	assert.Equal(t, "Cook 5-8 minutes", rewriteOne(t, "Cook 4-6 minutes", nil, 3))
	assert.Equal(t, "Fry 5 - 8 mins", rewriteOne(t, "Fry 4 - 6 mins", nil, 3))
}

func TestLocalRewriterPrefersLiteralIngredientName(t *testing.T) {
	ingredients := []string{"1 green chilli, slit", "1 tsp black pepper"}

	assert.Equal(t, "Sprinkle 2.2 tsp black pepper", rewriteOne(t, "Sprinkle pepper", ingredients, 3))
	assert.Equal(t, "Add 2.2 green chilli", rewriteOne(t, "Add chilli", ingredients, 3))
}

func TestLocalRewriterFallsBackToAlias(t *testing.T) {
	got := rewriteOne(t, "Add pepper", []string{"1 green chilli, slit"}, 3)
	assert.Equal(t, "Add 2.2 green chilli", got)
}

func TestLocalRewriterContainer(t *testing.T) {
	tests := []struct {
		step     string
		servings int
		want     string
	}{
		{"Heat in a small pan", 2, "Heat in a small pan"},
		{"Heat in a small pan", 3, "Heat in a medium pan"},
		{"Use a Medium Pot", 4, "Use a Large Pot"},
		{"Use a large bowl", 4, "Use a large bowl"},
		{"Heat in a small pan", 6, "Heat in a large pan"},
		{"Take a medium vessel", 6, "Take a large vessel"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rewriteOne(t, tt.step, nil, tt.servings))
	}
}

func TestLocalRewriterServingHint(t *testing.T) {
	assert.Equal(t, "Mix well (mix thoroughly for larger quantity)", rewriteOne(t, "Mix well", nil, 5))
	assert.Equal(t, "Fry onions (may need to cook in batches)", rewriteOne(t, "Fry onions", nil, 5))
	assert.Equal(t, "Stir and cook (mix thoroughly for larger quantity)", rewriteOne(t, "Stir and cook", nil, 6))
	assert.Equal(t, "Mix well", rewriteOne(t, "Mix well", nil, 4))
	assert.Equal(t, "Serve hot", rewriteOne(t, "Serve hot", nil, 8))
}

func TestLocalRewriterSkipsUnquantifiedIngredients(t *testing.T) {
	got := rewriteOne(t, "Season with salt", []string{"Salt to taste"}, 3)
	assert.Equal(t, "Season with salt", got)
}

func TestLocalRewriterPreservesStepCount(t *testing.T) {
	r := NewLocalRewriter()
	for _, steps := range [][]string{nil, {}, {""}, {"a", "b", "c"}} {
		out, err := r.Rewrite(context.Background(), Request{Steps: steps, Servings: 7})
		require.NoError(t, err)
		assert.Len(t, out, len(steps))
	}
}

func TestLocalRewriterName(t *testing.T) {
	assert.Equal(t, "local", NewLocalRewriter().Name())
}
