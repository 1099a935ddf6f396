package catalog

import (
	"context"

	"github.com/autoparts/storefront/models"
)

// Provider supplies the catalog. Implementations return products ordered by
// id, in slices the caller may modify.
type Provider interface {
	Products(ctx context.Context) ([]models.Product, error)
	Brands(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// MemoryProvider serves a fixed in-process catalog.
type MemoryProvider struct {
	products   []models.Product
	brands     []string
	categories []models.Category
}

func NewMemoryProvider(products []models.Product, brands []string, categories []models.Category) *MemoryProvider {
	return &MemoryProvider{products: products, brands: brands, categories: categories}
}

// NewSampleProvider returns a MemoryProvider over the built-in sample catalog.
func NewSampleProvider() *MemoryProvider {
	return NewMemoryProvider(SampleProducts(), SampleBrands(), SampleCategories())
}

func (m *MemoryProvider) Products(context.Context) ([]models.Product, error) {
	return append([]models.Product{}, m.products...), nil
}

func (m *MemoryProvider) Brands(context.Context) ([]string, error) {
	return append([]string{}, m.brands...), nil
}

func (m *MemoryProvider) Categories(context.Context) ([]models.Category, error) {
	return append([]models.Category{}, m.categories...), nil
}

func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Тормозные колодки передние",
			Article:       "BRP-2341",
			Brand:         "Brembo",
			Price:         3500,
			OriginalPrice: models.Price(4200),
			Category:      "Тормозная система",
			Compatibility: []string{"Volkswagen", "Audi", "Skoda"},
			InStock:       true,
			Image:         "/placeholder.svg",
			IsPromo:       true,
		},
		{
			ID:            2,
			Name:          "Масляный фильтр",
			Article:       "OF-8891",
			Brand:         "Mann Filter",
			Price:         890,
			Category:      "Фильтры",
			Compatibility: []string{"Toyota", "Lexus", "Honda"},
			InStock:       true,
			Image:         "/placeholder.svg",
		},
		{
			ID:            3,
			Name:          "Амортизатор задний",
			Article:       "SHK-7712",
			Brand:         "Bilstein",
			Price:         7200,
			Category:      "Подвеска",
			Compatibility: []string{"BMW", "Mercedes-Benz"},
			InStock:       true,
			Image:         "/placeholder.svg",
		},
		{
			ID:            4,
			Name:          "Свечи зажигания комплект",
			Article:       "SP-4455",
			Brand:         "NGK",
			Price:         1200,
			OriginalPrice: models.Price(1500),
			Category:      "Система зажигания",
			Compatibility: []string{"Nissan", "Mazda", "Mitsubishi"},
			InStock:       true,
			Image:         "/placeholder.svg",
			IsPromo:       true,
		},
		{
			ID:            5,
			Name:          "Генератор 120A",
			Article:       "GEN-9934",
			Brand:         "Bosch",
			Price:         12500,
			Category:      "Электрика",
			Compatibility: []string{"Ford", "Chevrolet"},
			InStock:       false,
			Image:         "/placeholder.svg",
		},
		{
			ID:            6,
			Name:          "Радиатор охлаждения",
			Article:       "RAD-5522",
			Brand:         "NRF",
			Price:         8900,
			Category:      "Система охлаждения",
			Compatibility: []string{"Renault", "Peugeot", "Citroen"},
			InStock:       true,
			Image:         "/placeholder.svg",
		},
	}
}

func SampleBrands() []string {
	return []string{"Bosch", "Brembo", "Mann Filter", "NGK", "Bilstein", "NRF"}
}

func SampleCategories() []models.Category {
	return []models.Category{
		{Name: "Тормозная система", Icon: "Disc3", Count: 234},
		{Name: "Двигатель", Icon: "Gauge", Count: 456},
		{Name: "Подвеска", Icon: "Settings2", Count: 189},
		{Name: "Электрика", Icon: "Zap", Count: 312},
		{Name: "Фильтры", Icon: "Filter", Count: 145},
		{Name: "Масла", Icon: "Droplet", Count: 98},
	}
}
