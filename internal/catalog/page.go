package catalog

// Static page shell data: navigation, delivery highlights and contact cards.

var navLinks = []NavLink{
	{Label: "Главное", Href: "#hero"},
	{Label: "Каталог", Href: "#catalog"},
	{Label: "О нас", Href: "#about"},
	{Label: "Доставка", Href: "#delivery"},
	{Label: "Контакты", Href: "#contacts"},
}

var deliverySteps = []DeliveryStep{
	{
		Title:       "Эко-упаковка",
		Description: "Каждый заказ упаковываем в перерабатываемые материалы без пластика.",
		Icon:        "Leaf",
	},
	{
		Title:       "География",
		Description: "Доставляем по России и СНГ через СДЭК, Boxberry и курьером в Москве.",
		Icon:        "Truck",
	},
	{
		Title:       "Сроки",
		Description: "Готовые изделия отправляем в течение 2 дней, пошив занимает 5-10 дней.",
		Icon:        "Clock3",
	},
}

var contacts = []Contact{
	{
		Title:   "Шоу-рум",
		Details: "Москва, Большой Харитоньевский переулок, 21",
		Icon:    "MapPin",
	},
	{
		Title:   "WhatsApp",
		Details: "+7 999 101 00 10",
		Icon:    "MessageCircle",
	},
	{
		Title:   "Почта",
		Details: "care@alanyastore.ru",
		Icon:    "Mail",
	},
}

func NavLinks() []NavLink {
	return navLinks
}

func DeliverySteps() []DeliveryStep {
	return deliverySteps
}

func Contacts() []Contact {
	return contacts
}
