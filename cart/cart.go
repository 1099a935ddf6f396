// Package cart holds the shopping cart of one storefront session.
package cart

import "github.com/autoparts/storefront/models"

// Cart is an insertion-ordered list of lines, at most one per product id.
// Every operation is total: ids that are not in the cart are ignored.
type Cart struct {
	lines []models.CartLine
}

// New returns a cart holding copies of lines. Lines with a non-positive
// quantity are dropped and duplicate ids are merged into the first one.
func New(lines []models.CartLine) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.Product.ID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add puts one more unit of p in the cart.
func (c *Cart) Add(p models.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of a line. Zero or a negative quantity
// removes the line.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

func (c *Cart) Remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Line(productID int64) (models.CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return models.CartLine{}, false
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	return append([]models.CartLine{}, c.lines...)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
