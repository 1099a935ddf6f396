package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/autoparts/storefront/models"
)

// snapshot is one consistent read of the underlying provider.
type snapshot struct {
	products   []models.Product
	brands     []string
	categories []models.Category
	fetchedAt  time.Time
}

// CachedProvider serves a provider's catalog from memory for ttl. Callers
// get their own copy of each slice.
type CachedProvider struct {
	next Provider
	ttl  time.Duration
	now  func() time.Time

	mu   sync.RWMutex
	snap *snapshot
}

func NewCachedProvider(next Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, ttl: ttl, now: time.Now}
}

func (c *CachedProvider) Products(ctx context.Context) ([]models.Product, error) {
	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]models.Product{}, s.products...), nil
}

func (c *CachedProvider) Brands(ctx context.Context) ([]string, error) {
	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, s.brands...), nil
}

func (c *CachedProvider) Categories(ctx context.Context) ([]models.Category, error) {
	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]models.Category{}, s.categories...), nil
}

// Invalidate drops the cached snapshot.
func (c *CachedProvider) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

func (c *CachedProvider) load(ctx context.Context) (*snapshot, error) {
	c.mu.RLock()
	s := c.snap
	c.mu.RUnlock()
	if s != nil && c.now().Sub(s.fetchedAt) < c.ttl {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil && c.now().Sub(c.snap.fetchedAt) < c.ttl {
		return c.snap, nil
	}

	products, err := c.next.Products(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := c.next.Brands(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := c.next.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.snap = &snapshot{
		products:   products,
		brands:     brands,
		categories: categories,
		fetchedAt:  c.now(),
	}
	return c.snap, nil
}
