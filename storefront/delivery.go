package storefront

import "github.com/autoparts/storefront/models"

const (
	CourierCost     int64 = 500
	CourierFreeFrom int64 = 10000
)

// QuoteDelivery prices the delivery options for a cart total.
func QuoteDelivery(total int64) []models.DeliveryQuote {
	courier := CourierCost
	if total >= CourierFreeFrom {
		courier = 0
	}
	pickup := int64(0)

	return []models.DeliveryQuote{
		{
			Method:      "courier",
			Title:       "Курьерская доставка",
			Description: "Доставка по городу в течение 1-2 дней",
			Cost:        &courier,
			FreeFrom:    CourierFreeFrom,
			Terms:       "1-2 дня",
		},
		{
			Method:      "transport",
			Title:       "Транспортные компании",
			Description: "СДЭК, Деловые Линии, ПЭК",
			Terms:       "2-7 дней в зависимости от региона",
		},
		{
			Method:      "pickup",
			Title:       "Самовывоз",
			Description: "Из нашего магазина по адресу: ул. Автомобильная, 15",
			Cost:        &pickup,
			Terms:       "в день оформления",
		},
	}
}
