package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 3.0, ScaleFactor("toor dal", 3))
	assert.InDelta(t, 2.2, ScaleFactor("turmeric powder", 3), 1e-9)
	assert.InDelta(t, 1.0, ScaleFactor("Curry leaves", 1), 1e-9)
	assert.True(t, IsSpice("Green Chilli"))
	assert.False(t, IsSpice("tomato"))
}

func TestScale(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		servings      int
		wantAmount    float64
		wantSet       bool
		wantFormatted string
	}{
		{"linear cup", "1/4 cup toor dal", 3, 0.75, true, "3/4"},
		{"half cup", "1/4 cup milk", 2, 0.5, true, "1/2"},
		{"spice growth", "1/2 tsp turmeric powder", 3, 1.1, true, "1.1"},
		{"range spice", "2-3 curry leaves", 3, 5.5, true, "5.5"},
		{"grams stay decimal", "0.25 g saffron", 2, 0.5, true, "0.5"},
		{"whole number", "2 tomatoes", 2, 4, true, "4"},
		{"grams scale", "250g chicken", 2, 500, true, "500"},
		{"few small", "Few curry leaves", 2, 0, false, "few"},
		{"few large", "Few curry leaves", 3, 0, false, "generous handful"},
		{"salt", "Salt to taste", 4, 0, false, "as needed"},
		{"garnish", "Fresh coriander for garnish", 4, 0, false, "as needed"},
		{"malformed", "1/0 cup water", 3, 0, false, "as needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(Parse(tt.line), tt.servings)
			amount, ok := got.Amount.Value()
			require.Equal(t, tt.wantSet, ok)
			if tt.wantSet {
				assert.InDelta(t, tt.wantAmount, amount, 1e-9)
			}
			assert.Equal(t, tt.wantFormatted, got.FormattedAmount)
		})
	}
}

func TestScaleSingleServingIsIdentity(t *testing.T) {
	lines := []string{
		"2 medium tomatoes, chopped",
		"1/4 cup toor dal (cooked)",
		"1/2 tsp turmeric powder",
		"2-3 curry leaves",
		"250g chicken",
	}
	for _, line := range lines {
		parsed := Parse(line)
		scaled := Scale(parsed, 1)
		want, _ := parsed.Amount.Value()
		got, ok := scaled.Amount.Value()
		require.True(t, ok, line)
		assert.InDelta(t, Round2(want), got, 1e-9, line)
		assert.Equal(t, parsed.Amount, scaled.OriginalAmount)
	}
}

func TestScaleAllKeepsOrder(t *testing.T) {
	lines := []string{"1 tsp ghee", "Salt to taste", "1 cup rice"}
	got := ScaleAll(lines, 2)
	require.Len(t, got, 3)
	assert.Equal(t, "ghee", got[0].Name)
	assert.Equal(t, "Salt", got[1].Name)
	assert.Equal(t, "rice", got[2].Name)
	assert.Equal(t, "2", got[2].FormattedAmount)
}

func TestScaleIsMonotonic(t *testing.T) {
	parsed := Parse("1/2 tsp mustard seeds")
	prev := 0.0
	for servings := 1; servings <= 8; servings++ {
		v, ok := Scale(parsed, servings).Amount.Value()
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestScaleCookingTime(t *testing.T) {
	tests := []struct {
		minutes  float64
		servings int
		want     int
	}{
		{25, 1, 25},
		{25, 3, 32},
		{25, 4, 36},
		{20, 3, 26},
		{15, 5, 24},
		{0, 4, 0},
		// .5 取偶數
		{30, 2, 34},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaleCookingTime(tt.minutes, tt.servings), "%v min @ %d", tt.minutes, tt.servings)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1/2", FormatAmount(0.5, "cup"))
	assert.Equal(t, "0.5", FormatAmount(0.5, "g"))
	assert.Equal(t, "1/3", FormatAmount(0.33, "tsp"))
	assert.Equal(t, "3/4", FormatAmount(0.75, "tbsp"))
	assert.Equal(t, "1.5", FormatAmount(1.5, "cup"))
	assert.Equal(t, "2", FormatAmount(2, ""))
	assert.Equal(t, "1/4", FormatQuantity(0.25))
	assert.Equal(t, "0.26", FormatDecimal(0.255))
}

func TestAmountJSON(t *testing.T) {
	b, err := Some(1.5).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(b))

	b, err = None().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var a Amount
	require.NoError(t, a.UnmarshalJSON([]byte("null")))
	assert.False(t, a.IsSet())
	require.NoError(t, a.UnmarshalJSON([]byte("2.25")))
	v, ok := a.Value()
	assert.True(t, ok)
	assert.Equal(t, 2.25, v)
}
