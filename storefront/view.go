package storefront

import (
	"context"

	"github.com/autoparts/storefront/cart"
	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/models"
)

// Catalog is one read of the catalog provider.
type Catalog struct {
	Products   []models.Product
	Brands     []string
	Categories []models.Category
}

// LoadCatalog reads products, brands and categories from p.
func LoadCatalog(ctx context.Context, p catalog.Provider) (Catalog, error) {
	products, err := p.Products(ctx)
	if err != nil {
		return Catalog{}, err
	}
	brands, err := p.Brands(ctx)
	if err != nil {
		return Catalog{}, err
	}
	categories, err := p.Categories(ctx)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Products: products, Brands: brands, Categories: categories}, nil
}

// View is the derived state handed to the renderer.
type View struct {
	Page          models.Page           `json:"page"`
	Content       PageContent           `json:"content"`
	Filter        models.FilterState    `json:"filter"`
	Products      []models.ProductView  `json:"products"`
	ProductsFound int                   `json:"productsFound"`
	Promos        []models.ProductView  `json:"promos"`
	Categories    []models.Category     `json:"categories"`
	Sidebar       models.FilterMetadata `json:"sidebar"`
	Cart          models.CartSummary    `json:"cart"`
}

// BuildView projects s against the catalog.
func BuildView(s State, cat Catalog) View {
	filtered := catalog.Filter(cat.Products, s.Filter)
	content, _ := Content(s.Page)
	return View{
		Page:          s.Page,
		Content:       content,
		Filter:        s.Filter,
		Products:      models.NewProductViews(filtered),
		ProductsFound: len(filtered),
		Promos:        models.NewProductViews(catalog.Promos(cat.Products)),
		Categories:    cat.Categories,
		Sidebar:       catalog.Metadata(cat.Products, cat.Brands),
		Cart:          Summarize(s.Cart),
	}
}

// Summarize computes the cart totals and delivery quote.
func Summarize(lines []models.CartLine) models.CartSummary {
	c := cart.New(lines)
	return models.CartSummary{
		Lines:    c.Lines(),
		Count:    c.Count(),
		Total:    c.Total(),
		Delivery: QuoteDelivery(c.Total()),
	}
}
