package catalog

// Item is a sellable product. Name is the identity key across the whole
// system; Price is the display string shown on the page and sent on the wire.
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
}

type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Items       []Item `json:"items"`
}

type NavLink struct {
	Label string
	Href  string
}

type DeliveryStep struct {
	Title       string
	Description string
	Icon        string
}

type Contact struct {
	Title   string
	Details string
	Icon    string
}
