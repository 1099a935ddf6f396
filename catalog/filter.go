package catalog

import (
	"strings"

	"github.com/autoparts/storefront/models"
)

// Filter returns the products passing every active predicate of f, in
// catalog order. It never reorders or duplicates and never fails; an
// inverted price range simply matches nothing.
func Filter(products []models.Product, f models.FilterState) []models.Product {
	query := strings.ToLower(f.Query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, query) {
			continue
		}
		if p.Price < f.PriceRange.Low || p.Price > f.PriceRange.High {
			continue
		}
		if len(f.Brands) > 0 && !f.HasBrand(p.Brand) {
			continue
		}
		if f.Compatibility != "" && !p.Compatible(f.Compatibility) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// query is already lower-cased
func matchesSearch(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Article), query)
}

// Promos returns the promotional products in catalog order.
func Promos(products []models.Product) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.IsPromo {
			out = append(out, p)
		}
	}
	return out
}

func ByID(products []models.Product, id int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Metadata summarises the catalog for the filter sidebar.
func Metadata(products []models.Product, brands []string) models.FilterMetadata {
	meta := models.FilterMetadata{
		Brands:       append([]string{}, brands...),
		Availability: &models.AvailabilityData{},
	}
	for i, p := range products {
		if i == 0 || p.Price < meta.PriceRange.Low {
			meta.PriceRange.Low = p.Price
		}
		if p.Price > meta.PriceRange.High {
			meta.PriceRange.High = p.Price
		}
		if p.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
	}
	return meta
}
