package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoparts/storefront/models"
)

var (
	brakePads = models.Product{ID: 1, Name: "Brake pads", Price: 3500}
	oilFilter = models.Product{ID: 2, Name: "Oil filter", Price: 890}
	generator = models.Product{ID: 5, Name: "Generator", Price: 12500}
)

func TestAddTwiceKeepsOneLine(t *testing.T) {
	c := New(nil)
	c.Add(brakePads)
	c.Add(brakePads)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, int64(7000), c.Total())
}

func TestAddThenSetQuantity(t *testing.T) {
	c := New(nil)
	c.Add(brakePads)
	c.Add(brakePads)
	c.UpdateQuantity(brakePads.ID, 5)

	require.Equal(t, 1, c.Len())
	line, ok := c.Line(brakePads.ID)
	require.True(t, ok)
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, int64(17500), c.Total())
	assert.Equal(t, 5, c.Count())
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New(nil)
	c.Add(generator)
	c.Add(brakePads)
	c.Add(oilFilter)
	c.Add(generator)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(5), lines[0].Product.ID)
	assert.Equal(t, int64(1), lines[1].Product.ID)
	assert.Equal(t, int64(2), lines[2].Product.ID)
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		c := New(nil)
		c.Add(brakePads)
		c.Add(oilFilter)
		c.UpdateQuantity(brakePads.ID, 0)

		_, ok := c.Line(brakePads.ID)
		assert.False(t, ok)
		assert.Equal(t, 1, c.Count())
		assert.Equal(t, int64(890), c.Total())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := New(nil)
		c.Add(brakePads)
		c.UpdateQuantity(brakePads.ID, -3)

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, 0, c.Count())
		assert.Equal(t, int64(0), c.Total())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := New(nil)
		c.Add(brakePads)
		c.UpdateQuantity(42, 7)

		assert.Equal(t, []models.CartLine{{Product: brakePads, Quantity: 1}}, c.Lines())
	})
}

func TestRemove(t *testing.T) {
	c := New(nil)
	c.Add(brakePads)
	c.Add(oilFilter)

	c.Remove(99)
	assert.Equal(t, 2, c.Len())

	c.Remove(brakePads.ID)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, oilFilter.ID, lines[0].Product.ID)
}

func TestTotalsAfterEveryMutation(t *testing.T) {
	c := New(nil)
	check := func() {
		var count int
		var total int64
		for _, l := range c.Lines() {
			assert.GreaterOrEqual(t, l.Quantity, 1)
			count += l.Quantity
			total += l.Product.Price * int64(l.Quantity)
		}
		assert.Equal(t, count, c.Count())
		assert.Equal(t, total, c.Total())
	}

	c.Add(brakePads)
	check()
	c.Add(generator)
	check()
	c.UpdateQuantity(generator.ID, 3)
	check()
	c.Add(brakePads)
	check()
	c.Remove(brakePads.ID)
	check()
	c.UpdateQuantity(generator.ID, 0)
	check()
	c.Clear()
	check()
	assert.Equal(t, 0, c.Len())
}

func TestNewNormalisesLines(t *testing.T) {
	c := New([]models.CartLine{
		{Product: brakePads, Quantity: 2},
		{Product: oilFilter, Quantity: 0},
		{Product: brakePads, Quantity: 1},
	})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestLinesIsACopy(t *testing.T) {
	c := New(nil)
	c.Add(brakePads)

	lines := c.Lines()
	lines[0].Quantity = 100

	line, _ := c.Line(brakePads.ID)
	assert.Equal(t, 1, line.Quantity)
}
