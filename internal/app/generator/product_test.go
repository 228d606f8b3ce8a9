package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_PriceOrdering(t *testing.T) {
	g := newTestGenerator(4)
	products := g.Products(500)
	require.Len(t, products, 500)

	for _, p := range products {
		assert.Less(t, p.UnitCost, p.UnitPrice, "product %d: cost must stay below price", p.ID)
		assert.LessOrEqual(t, p.UnitPrice, p.MSRP, "product %d: price must not exceed msrp", p.ID)
	}
}

func TestProducts_BrandBelongsToCategory(t *testing.T) {
	g := newTestGenerator(5)
	products := g.Products(300)

	brandsByCategory := make(map[uint]map[string]bool)
	for _, spec := range categorySpecs {
		set := make(map[string]bool, len(spec.Brands))
		for _, b := range spec.Brands {
			set[b] = true
		}
		brandsByCategory[spec.ID] = set
	}

	for _, p := range products {
		set, ok := brandsByCategory[p.CategoryID]
		require.True(t, ok, "product %d references unknown category %d", p.ID, p.CategoryID)
		assert.True(t, set[p.Brand], "product %d: brand %q not sold in category %d", p.ID, p.Brand, p.CategoryID)
	}
}

func TestCategories_FixedSet(t *testing.T) {
	g := newTestGenerator(6)
	first := g.Categories()
	second := g.Categories()

	require.Len(t, first, 8)
	assert.Equal(t, first, second, "category generation must be deterministic")
	assert.Equal(t, "Electronics", first[0].Name)
	for i, c := range first {
		assert.Equal(t, uint(i+1), c.ID)
		assert.True(t, c.IsActive)
	}
}
