// Package storefront owns the browsing state of one storefront session:
// the current page, the catalog filters and the cart.
package storefront

import (
	"github.com/autoparts/storefront/cart"
	"github.com/autoparts/storefront/models"
)

// State is everything a session remembers between requests.
type State struct {
	Page   models.Page        `json:"page"`
	Filter models.FilterState `json:"filter"`
	Cart   []models.CartLine  `json:"cart"`
}

func NewState() State {
	return State{
		Page:   models.PageHome,
		Filter: models.DefaultFilterState(),
		Cart:   []models.CartLine{},
	}
}

func (s State) clone() State {
	s.Filter.Brands = append([]string{}, s.Filter.Brands...)
	s.Cart = append([]models.CartLine{}, s.Cart...)
	return s
}

// Action is one user input applied to a session.
type Action interface {
	apply(s *State)
}

// Reduce returns the state after applying a. The input state is not modified.
func Reduce(s State, a Action) State {
	next := s.clone()
	a.apply(&next)
	return next
}

type Navigate struct{ Page models.Page }

func (a Navigate) apply(s *State) { s.Page = a.Page }

// Search sets the query; a non-empty query switches to the catalog.
type Search struct{ Query string }

func (a Search) apply(s *State) {
	s.Filter.Query = a.Query
	if a.Query != "" {
		s.Page = models.PageCatalog
	}
}

type SetPriceRange struct{ Range models.PriceRange }

func (a SetPriceRange) apply(s *State) { s.Filter.PriceRange = a.Range }

type ToggleBrand struct{ Brand string }

func (a ToggleBrand) apply(s *State) {
	for i, b := range s.Filter.Brands {
		if b == a.Brand {
			s.Filter.Brands = append(s.Filter.Brands[:i], s.Filter.Brands[i+1:]...)
			return
		}
	}
	s.Filter.Brands = append(s.Filter.Brands, a.Brand)
}

type SetCompatibility struct{ Compatibility string }

func (a SetCompatibility) apply(s *State) { s.Filter.Compatibility = a.Compatibility }

// ClearFilters resets price, brands and compatibility. The search query is kept.
type ClearFilters struct{}

func (ClearFilters) apply(s *State) {
	query := s.Filter.Query
	s.Filter = models.DefaultFilterState()
	s.Filter.Query = query
}

type AddToCart struct{ Product models.Product }

func (a AddToCart) apply(s *State) {
	s.withCart(func(c *cart.Cart) { c.Add(a.Product) })
}

type UpdateQuantity struct {
	ProductID int64
	Quantity  int
}

func (a UpdateQuantity) apply(s *State) {
	s.withCart(func(c *cart.Cart) { c.UpdateQuantity(a.ProductID, a.Quantity) })
}

type RemoveFromCart struct{ ProductID int64 }

func (a RemoveFromCart) apply(s *State) {
	s.withCart(func(c *cart.Cart) { c.Remove(a.ProductID) })
}

type ClearCart struct{}

func (ClearCart) apply(s *State) {
	s.withCart(func(c *cart.Cart) { c.Clear() })
}

func (s *State) withCart(fn func(c *cart.Cart)) {
	c := cart.New(s.Cart)
	fn(c)
	s.Cart = c.Lines()
}
