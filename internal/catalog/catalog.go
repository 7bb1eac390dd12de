package catalog

import "github.com/gosimple/slug"

const cdnBase = "https://cdn.poehali.dev/projects/70fe6f9c-8231-428b-8399-dc0b53874b78/files"

var sections = []Section{
	{
		Title:       "Мужская коллекция",
		Description: "Льняные рубашки, жилеты из шерсти и брюки из органического хлопка для повседневных образов.",
		Image:       cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg",
		Items: []Item{
			{Name: "Льняная рубашка свободного кроя", Price: "2 500 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Жилет ручной работы", Price: "4 100 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Брюки из пеньки", Price: "3 600 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Шаровары с резинкой", Price: "3 200 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
		},
	},
	{
		Title:       "Женская коллекция",
		Description: "Платья-кейпы, струящиеся юбки и жакеты с ручной вышивкой для особенных дней и будней.",
		Image:       cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg",
		Items: []Item{
			{Name: "Льняное платье-кейп", Price: "5 400 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Юбка миди клёш", Price: "2 900 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Жакет с вышивкой", Price: "6 200 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
			{Name: "Топ из органического хлопка", Price: "1 800 ₽", Image: cdnBase + "/b0dded1d-0f40-4907-a5e3-fb7d6bd395c3.jpg"},
		},
	},
	{
		Title:       "Аксессуары",
		Description: "Плетёные сумки, кожаные ремни и текстильные украшения завершают образ с теплом рук мастера.",
		Image:       cdnBase + "/8dfba831-aaef-4718-b01e-a34e73dec516.jpg",
		Items: []Item{
			{Name: "Плетёная сумка-тоут", Price: "2 700 ₽", Image: cdnBase + "/8dfba831-aaef-4718-b01e-a34e73dec516.jpg"},
			{Name: "Льняной шарф", Price: "1 200 ₽", Image: cdnBase + "/8dfba831-aaef-4718-b01e-a34e73dec516.jpg"},
			{Name: "Кожаный ремень", Price: "2 100 ₽", Image: cdnBase + "/8dfba831-aaef-4718-b01e-a34e73dec516.jpg"},
		},
	},
}

var (
	bySlug = make(map[string]*Item)
	byName = make(map[string]*Item)
)

func init() {
	for si := range sections {
		for ii := range sections[si].Items {
			item := &sections[si].Items[ii]
			item.Slug = slug.Make(item.Name)
			bySlug[item.Slug] = item
			byName[item.Name] = item
		}
	}
}

// Sections returns the static catalog grouped for the page shell.
func Sections() []Section {
	return sections
}

func ItemBySlug(s string) (Item, bool) {
	item, ok := bySlug[s]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

func ItemByName(name string) (Item, bool) {
	item, ok := byName[name]
	if !ok {
		return Item{}, false
	}
	return *item, true
}
