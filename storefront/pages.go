package storefront

import "github.com/autoparts/storefront/models"

// Block is a titled paragraph of static page text.
type Block struct {
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Figure is a headline number on the about page.
type Figure struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PageContent is the static part of an informational page.
type PageContent struct {
	Page     models.Page `json:"page"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Sections []Block     `json:"sections,omitempty"`
	Payment  []Block     `json:"payment,omitempty"`
	Figures  []Figure    `json:"figures,omitempty"`
}

var staticPages = map[models.Page]PageContent{
	models.PageHome: {
		Page:     models.PageHome,
		Title:    "Автозапчасти для вашего автомобиля",
		Subtitle: "Более 10 000 наименований от проверенных поставщиков. Доставка по всей России.",
	},
	models.PageCatalog: {
		Page:  models.PageCatalog,
		Title: "Каталог автозапчастей",
	},
	models.PagePromo: {
		Page:  models.PagePromo,
		Title: "Акции",
	},
	models.PageDelivery: {
		Page:     models.PageDelivery,
		Title:    "Доставка и оплата",
		Subtitle: "Информация о способах доставки и оплаты заказов",
		Payment: []Block{
			{Title: "Банковские карты", Text: "Принимаем карты Visa, MasterCard, МИР"},
			{Title: "Наличные", Text: "Оплата курьеру при получении или в магазине при самовывозе"},
			{Title: "Банковский перевод", Text: "Для юридических лиц с НДС. Отправим счет на электронную почту"},
		},
	},
	models.PageAbout: {
		Page:     models.PageAbout,
		Title:    "О компании",
		Subtitle: "AutoParts - надежный поставщик автозапчастей с 2010 года",
		Sections: []Block{
			{Title: "Наша миссия", Text: "Мы стремимся сделать обслуживание автомобиля простым и доступным для каждого. Предлагаем только качественные запчасти от проверенных производителей по справедливым ценам."},
			{Title: "Большой ассортимент", Text: "Более 10 000 наименований запчастей"},
			{Title: "Гарантия качества", Text: "Все товары сертифицированы"},
			{Title: "Быстрая доставка", Text: "Отправка в день заказа"},
			{Title: "Профессиональная помощь", Text: "Консультации специалистов"},
		},
		Figures: []Figure{
			{Value: "14+", Label: "лет на рынке"},
			{Value: "10K+", Label: "товаров"},
			{Value: "5K+", Label: "клиентов"},
			{Value: "98%", Label: "довольных"},
		},
	},
	models.PageContacts: {
		Page:     models.PageContacts,
		Title:    "Контакты",
		Subtitle: "Свяжитесь с нами удобным способом",
		Sections: []Block{
			{Title: "Адрес магазина", Text: "г. Москва, ул. Автомобильная, 15", Note: "Режим работы: Пн-Пт 9:00-20:00, Сб-Вс 10:00-18:00"},
			{Title: "Телефон", Text: "+7 (495) 123-45-67", Note: "Звоните с 9:00 до 21:00 (МСК)"},
			{Title: "Email", Text: "info@autoparts.ru", Note: "Ответим в течение 24 часов"},
			{Title: "Мессенджеры", Text: "WhatsApp / Telegram", Note: "+7 (495) 123-45-67"},
		},
	},
}

// Content returns the static content of page.
func Content(page models.Page) (PageContent, bool) {
	c, ok := staticPages[page]
	return c, ok
}
