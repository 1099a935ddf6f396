package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoparts/storefront/models"
)

type countingProvider struct {
	*MemoryProvider
	calls int
	err   error
}

func (p *countingProvider) Products(ctx context.Context) ([]models.Product, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.MemoryProvider.Products(ctx)
}

func TestCachedProvider(t *testing.T) {
	ctx := context.Background()
	next := &countingProvider{MemoryProvider: NewSampleProvider()}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cached := NewCachedProvider(next, time.Minute)
	cached.now = func() time.Time { return now }

	products, err := cached.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	brands, err := cached.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, SampleBrands(), brands)
	assert.Equal(t, 1, next.calls)

	now = now.Add(30 * time.Second)
	_, err = cached.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	now = now.Add(time.Minute)
	_, err = cached.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	cached.Invalidate()
	_, err = cached.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, next.calls)
}

func TestCachedProviderDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("mongo down")
	next := &countingProvider{MemoryProvider: NewSampleProvider(), err: boom}
	cached := NewCachedProvider(next, time.Minute)

	_, err := cached.Products(ctx)
	assert.ErrorIs(t, err, boom)

	next.err = nil
	products, err := cached.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Equal(t, 2, next.calls)
}

func TestCachedProviderReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cached := NewCachedProvider(NewSampleProvider(), time.Minute)

	products, err := cached.Products(ctx)
	require.NoError(t, err)
	products[0].Price = 1
	brands, err := cached.Brands(ctx)
	require.NoError(t, err)
	brands[0] = "Acme"

	again, err := cached.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), again[0].Price)
	brands, err = cached.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bosch", brands[0])
}
