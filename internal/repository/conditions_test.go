package repository

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/modavn/catalog_api/internal/models"
)

func TestBuildVariantFilterEmpty(t *testing.T) {
	assert.Equal(t, "", buildVariantFilter(nil).where())

	cs := buildVariantFilter(&models.FilterRequest{})
	assert.True(t, cs.empty())
	assert.Equal(t, "", cs.where())
	assert.Empty(t, cs.args)
}

func TestBuildVariantFilterSinglePredicates(t *testing.T) {
	testCases := []struct {
		name     string
		req      models.FilterRequest
		wantFrag string
		wantArgs int
	}{
		{
			name:     "colors",
			req:      models.FilterRequest{Colors: []string{"red", "blue"}},
			wantFrag: "sp.color = ANY(?)",
			wantArgs: 1,
		},
		{
			name:     "size",
			req:      models.FilterRequest{Size: "M"},
			wantFrag: "sp.size = ?",
			wantArgs: 1,
		},
		{
			name:     "price range",
			req:      models.FilterRequest{Price: []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(50)}},
			wantFrag: "sp.price BETWEEN ? AND ?",
			wantArgs: 2,
		},
		{
			name:     "categories",
			req:      models.FilterRequest{Categories: []string{"c1"}},
			wantFrag: "pc.category_id::text = ANY(?)",
			wantArgs: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := buildVariantFilter(&tc.req)
			assert.Len(t, cs.frags, 1)
			assert.Contains(t, cs.frags[0], tc.wantFrag)
			assert.Len(t, cs.args, tc.wantArgs)
			assert.True(t, strings.HasPrefix(cs.where(), "WHERE "))
		})
	}
}

// A price that is not a two-element range restricts nothing.
func TestBuildVariantFilterIgnoresMalformedPrice(t *testing.T) {
	cs := buildVariantFilter(&models.FilterRequest{
		Price: []decimal.Decimal{decimal.NewFromInt(10)},
	})
	assert.True(t, cs.empty())

	cs = buildVariantFilter(&models.FilterRequest{
		Price: []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20), decimal.NewFromInt(30)},
	})
	assert.True(t, cs.empty())
}

func TestBuildVariantFilterConjunction(t *testing.T) {
	cs := buildVariantFilter(&models.FilterRequest{
		Colors:     []string{"red"},
		Size:       "M",
		Price:      []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(50)},
		Categories: []string{"c1", "c2"},
	})

	assert.Len(t, cs.frags, 4)
	assert.Len(t, cs.args, 5)

	where := cs.where()
	assert.True(t, strings.HasPrefix(where, "WHERE "))
	assert.Contains(t, where, "sp.color = ANY(?)")
	assert.Contains(t, where, "sp.size = ?")
	assert.Contains(t, where, "sp.price BETWEEN ? AND ?")
	assert.Contains(t, where, "pc.category_id::text = ANY(?)")
	// Values never appear in the SQL text.
	assert.NotContains(t, where, "red")
	assert.NotContains(t, where, "c1")
	assert.NotContains(t, where, "10")
}
