package catalog

import (
	"context"
	"testing"

	"recipe-browser/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGet(t *testing.T) {
	c := New()
	ctx := context.Background()

	r, err := c.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Rasam", r.Name)
	assert.Equal(t, 25, r.CookingTime)
	assert.Len(t, r.Ingredients, 11)
	assert.Len(t, r.Instructions, 8)

	_, err = c.Get(ctx, "99")
	assert.ErrorIs(t, err, common.ErrRecipeNotFound)
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := New()
	ctx := context.Background()

	r, err := c.Get(ctx, "1")
	require.NoError(t, err)
	r.Ingredients[0] = "changed"
	r.Name = "changed"

	again, err := c.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2 medium tomatoes, chopped", again.Ingredients[0])
	assert.Equal(t, "Tomato Rasam", again.Name)
}

func TestCatalogSearch(t *testing.T) {
	c := New()
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"curry", []string{"2", "3"}},
		{"RASAM", []string{"1"}},
		{"சாதம்", []string{"4"}},
		{"  rice ", []string{"4"}},
		{"pizza", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(ctx, tt.query)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogListOrder(t *testing.T) {
	list := New().List(context.Background())
	require.Len(t, list, 4)
	assert.Equal(t, "Tomato Rasam", list[0].Name)
	assert.Equal(t, "Curd Rice", list[3].Name)
}
