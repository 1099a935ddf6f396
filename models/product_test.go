package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscount(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		has     bool
		percent int
		savings int64
	}{
		{"brake pads", Product{Price: 3500, OriginalPrice: Price(4200)}, true, 17, 700},
		{"spark plugs", Product{Price: 1200, OriginalPrice: Price(1500)}, true, 20, 300},
		{"no original price", Product{Price: 890}, false, 0, 0},
		{"original equal to price", Product{Price: 890, OriginalPrice: Price(890)}, false, 0, 0},
		{"original below price", Product{Price: 890, OriginalPrice: Price(500)}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.has, tt.product.HasDiscount())
			assert.Equal(t, tt.percent, tt.product.DiscountPercent())
			assert.Equal(t, tt.savings, tt.product.Savings())
		})
	}
}

func TestCompatible(t *testing.T) {
	p := Product{Compatibility: []string{"BMW", "Mercedes-Benz"}}
	assert.True(t, p.Compatible("BMW"))
	assert.False(t, p.Compatible("Mercedes"))
	assert.False(t, p.Compatible(""))
}

func TestParsePage(t *testing.T) {
	for _, p := range Pages {
		got, err := ParsePage(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePage("checkout")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestDefaultFilterState(t *testing.T) {
	f := DefaultFilterState()
	assert.Equal(t, PriceRange{Low: 0, High: 20000}, f.PriceRange)
	assert.Empty(t, f.Brands)
	assert.Empty(t, f.Compatibility)
	assert.Empty(t, f.Query)
}
