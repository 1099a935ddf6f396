// models/filters.go
package models

const (
	DefaultPriceLow  int64 = 0
	DefaultPriceHigh int64 = 20000
)

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// FilterState narrows the catalog view. Empty fields do not restrict.
type FilterState struct {
	PriceRange    PriceRange `json:"priceRange"`
	Brands        []string   `json:"brands"`
	Compatibility string     `json:"compatibility"`
	Query         string     `json:"query"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: PriceRange{Low: DefaultPriceLow, High: DefaultPriceHigh},
		Brands:     []string{},
	}
}

// HasBrand reports whether brand is in the selected set.
func (f FilterState) HasBrand(brand string) bool {
	for _, b := range f.Brands {
		if b == brand {
			return true
		}
	}
	return false
}

// FilterMetadata feeds the filter sidebar.
type FilterMetadata struct {
	Brands       []string          `json:"brands"`
	PriceRange   PriceRange        `json:"priceRange"`
	Availability *AvailabilityData `json:"availability"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}
