// models/product.go

package models

import "math"

// Product is a catalog entry. Prices are in minor currency units.
type Product struct {
	ID            int64    `bson:"_id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Article       string   `bson:"article" json:"article"`
	Brand         string   `bson:"brand" json:"brand"`
	Price         int64    `bson:"price" json:"price"`
	OriginalPrice *int64   `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Category      string   `bson:"category" json:"category"`
	Compatibility []string `bson:"compatibility" json:"compatibility"`
	InStock       bool     `bson:"inStock" json:"inStock"`
	Image         string   `bson:"image" json:"image"`
	IsPromo       bool     `bson:"isPromo,omitempty" json:"isPromo,omitempty"`
}

// HasDiscount reports whether the original price is set and above the current one.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// Savings is the absolute discount, zero when there is none.
func (p Product) Savings() int64 {
	if !p.HasDiscount() {
		return 0
	}
	return *p.OriginalPrice - p.Price
}

// DiscountPercent is the discount rounded to the nearest whole percent.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round(float64(p.Savings()) * 100 / float64(*p.OriginalPrice)))
}

// Compatible reports whether vehicle is listed verbatim in the compatibility list.
func (p Product) Compatible(vehicle string) bool {
	for _, m := range p.Compatibility {
		if m == vehicle {
			return true
		}
	}
	return false
}

// ProductView is what the storefront renders for a product card.
type ProductView struct {
	Product
	DiscountPercent int   `json:"discountPercent,omitempty"`
	Savings         int64 `json:"savings,omitempty"`
}

func NewProductView(p Product) ProductView {
	return ProductView{
		Product:         p,
		DiscountPercent: p.DiscountPercent(),
		Savings:         p.Savings(),
	}
}

func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}

// Category is a home page category tile.
type Category struct {
	Name  string `bson:"name" json:"name"`
	Icon  string `bson:"icon" json:"icon"`
	Count int    `bson:"count" json:"count"`
}

// Price returns a pointer to v, for OriginalPrice literals.
func Price(v int64) *int64 {
	return &v
}
