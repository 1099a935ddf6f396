package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/storefront"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	pads := models.Product{
		ID:            1,
		Name:          "Тормозные колодки передние",
		Article:       "BRP-2341",
		Brand:         "Brembo",
		Price:         3500,
		OriginalPrice: models.Price(4200),
		Compatibility: []string{"Volkswagen", "Audi", "Skoda"},
		InStock:       true,
		IsPromo:       true,
	}
	filter := models.Product{ID: 2, Brand: "Mann Filter", Price: 890, Compatibility: []string{"Toyota"}, InStock: true}

	s := storefront.NewState()
	for _, a := range []storefront.Action{
		storefront.Search{Query: "brp"},
		storefront.ToggleBrand{Brand: "Brembo"},
		storefront.SetCompatibility{Compatibility: "Audi"},
		storefront.AddToCart{Product: pads},
		storefront.AddToCart{Product: filter},
		storefront.UpdateQuantity{ProductID: pads.ID, Quantity: 3},
	} {
		s = storefront.Reduce(s, a)
	}

	require.NoError(t, store.Save(ctx, "abc", s))
	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.Len(t, got.Cart, 2)
	require.NotNil(t, got.Cart[0].Product.OriginalPrice)
	assert.Equal(t, int64(4200), *got.Cart[0].Product.OriginalPrice)
	assert.Nil(t, got.Cart[1].Product.OriginalPrice)
	assert.Equal(t, int64(3*3500+890), storefront.Summarize(got.Cart).Total)
}

func TestRedisStoreEmptyAndNilCart(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "empty", storefront.NewState()))
	got, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, got.Cart)
	assert.Empty(t, got.Cart)
	assert.NotNil(t, got.Filter.Brands)

	s := storefront.NewState()
	s.Cart = nil
	require.NoError(t, store.Save(ctx, "nil", s))
	got, err = store.Get(ctx, "nil")
	require.NoError(t, err)
	assert.Empty(t, got.Cart)

	got = storefront.Reduce(got, storefront.AddToCart{Product: models.Product{ID: 7, Price: 100}})
	assert.Equal(t, 1, storefront.Summarize(got.Cart).Count)
}

func TestRedisStoreSlidingTTL(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", storefront.NewState()))
	assert.Equal(t, time.Minute, mr.TTL("session:abc"))

	mr.FastForward(40 * time.Second)
	assert.Equal(t, 20*time.Second, mr.TTL("session:abc"))

	_, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("session:abc"))

	mr.FastForward(61 * time.Second)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreMissingAndDeleted(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "abc", storefront.NewState()))
	require.NoError(t, store.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("session:abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "abc"))
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	require.NoError(t, mr.Set("session:bad", "{not json"))

	_, err := store.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	mr.Close()

	_, err := store.Get(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, store.Save(context.Background(), "abc", storefront.NewState()))
}

func TestManagerOverRedis(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	m := NewManager(store)
	ctx := context.Background()

	id, _, err := m.Start(ctx)
	require.NoError(t, err)

	s, err := m.Apply(ctx, id,
		storefront.Navigate{Page: models.PageDelivery},
		storefront.AddToCart{Product: models.Product{ID: 1, Price: 3500}},
	)
	require.NoError(t, err)

	stored, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, s, stored)
	assert.Equal(t, models.PageDelivery, stored.Page)

	require.NoError(t, m.End(ctx, id))
	ok, err := m.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
