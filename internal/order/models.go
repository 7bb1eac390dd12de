package order

// ContactForm is the transient contact data captured by a checkout dialog.
// Name and phone are required by the input layer; email and comment are not.
type ContactForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type LineItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Payload is the wire shape sent to the order intake endpoint.
type Payload struct {
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Comment string     `json:"comment"`
	Items   []LineItem `json:"items"`
	Total   string     `json:"total"`
}
