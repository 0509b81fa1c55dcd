package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line       string
		wantAmount float64
		wantSet    bool
		wantUnit   string
		wantName   string
	}{
		{"Salt to taste", 0, false, "", "Salt"},
		{"salt as needed", 0, false, "", "Salt"},
		{"Salt needed", 0, false, "", "Salt"},
		{"2-3 curry leaves", 2.5, true, "", "curry leaves"},
		{"1/2 tsp turmeric powder", 0.5, true, "tsp", "turmeric powder"},
		{"1/4 cup toor dal (cooked)", 0.25, true, "cup", "toor dal (cooked)"},
		{"2 Tablespoons coconut oil", 2, true, "tbsp", "coconut oil"},
		{"3 cups water", 3, true, "cup", "water"},
		{"2.5 grams saffron", 2.5, true, "g", "saffron"},
		{"250g chicken, cut into pieces", 250, true, "g", "chicken, cut into pieces"},
		{"2oz butter", 2, true, "oz", "butter"},
		{"1 litre milk", 1, true, "l", "milk"},
		{"1 inch ginger, minced", 1, true, "inch", "ginger, minced"},
		{"2 medium tomatoes, chopped", 2, true, "", "medium tomatoes, chopped"},
		{"1 green chili, slit", 1, true, "", "green chili, slit"},
		{"2 onions", 2, true, "", "onions"},
		{"Few curry leaves", 0, false, "few", "curry leaves"},
		{"A little oil", 0, false, "few", "oil"},
		{"a pinch of hing", 1, true, "pinch", "hing"},
		{"Pinch asafoetida", 1, true, "pinch", "asafoetida"},
		{"Rice - 2 cups", 2, true, "cup", "Rice"},
		{"Curry leaves – 2-3", 2.5, true, "", "Curry leaves"},
		{"Fresh coriander for garnish", 0, false, "", "Fresh coriander for garnish"},
		{"1/0 cup broken", 0, false, "cup", "broken"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Parse(tt.line)
			amount, ok := got.Amount.Value()
			assert.Equal(t, tt.wantSet, ok, "amount set")
			if tt.wantSet {
				assert.InDelta(t, tt.wantAmount, amount, 1e-9)
			}
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.line, got.OriginalText)
		})
	}
}

func TestParseKeepsOriginalText(t *testing.T) {
	got := Parse("  1 tsp ghee  ")
	assert.Equal(t, "1 tsp ghee", got.OriginalText)
	assert.Equal(t, "ghee", got.Name)
}

func TestParseEmpty(t *testing.T) {
	got := Parse("")
	assert.False(t, got.Amount.IsSet())
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "", got.Unit)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantSet bool
	}{
		{"2", 2, true},
		{"2.5", 2.5, true},
		{"1/2", 0.5, true},
		{"3/4", 0.75, true},
		{"2-3", 2.5, true},
		{"1 - 2", 1.5, true},
		{"1/0", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := ParseNumber(tt.in).Value()
			assert.Equal(t, tt.wantSet, ok)
			if tt.wantSet {
				assert.InDelta(t, tt.want, v, 1e-9)
			}
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "tsp", NormalizeUnit("Teaspoon"))
	assert.Equal(t, "tbsp", NormalizeUnit("tablespoon"))
	assert.Equal(t, "cup", NormalizeUnit("cups"))
	assert.Equal(t, "g", NormalizeUnit("grams"))
	assert.Equal(t, "l", NormalizeUnit("liter"))
	assert.Equal(t, "bunch", NormalizeUnit("bunch"))
	assert.Equal(t, "", NormalizeUnit(""))
}
