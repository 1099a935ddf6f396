package models

// CartLine pairs a product with a quantity of at least one.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// CartSummary is the cart as handed to the renderer.
type CartSummary struct {
	Lines    []CartLine      `json:"lines"`
	Count    int             `json:"cartCount"`
	Total    int64           `json:"cartTotal"`
	Delivery []DeliveryQuote `json:"delivery"`
}

// DeliveryQuote is one delivery option priced against a cart total.
// Cost is nil when the price is calculated individually.
type DeliveryQuote struct {
	Method      string `json:"method"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        *int64 `json:"cost"`
	FreeFrom    int64  `json:"freeFrom,omitempty"`
	Terms       string `json:"terms"`
}
