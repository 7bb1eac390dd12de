package order

import (
	"fmt"

	"alanya-store/internal/cart"
	"alanya-store/internal/catalog"
)

// SinglePayload builds the payload for a one-item order. The item's display
// price is passed through verbatim and doubles as the total.
func SinglePayload(item catalog.Item, form ContactForm) Payload {
	return Payload{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Comment: form.Comment,
		Items: []LineItem{
			{Name: item.Name, Price: item.Price},
		},
		Total: item.Price,
	}
}

// CartPayload builds the payload for a whole-cart order. Each line is
// rendered as "<name> x<quantity>" with its subtotal, and the total is the
// sum of all subtotals.
func CartPayload(lines []cart.Line, form ContactForm) Payload {
	items := make([]LineItem, len(lines))
	total := 0
	for i, line := range lines {
		subtotal := catalog.ParsePrice(line.Item.Price) * line.Quantity
		items[i] = LineItem{
			Name:  fmt.Sprintf("%s x%d", line.Item.Name, line.Quantity),
			Price: catalog.FormatPrice(subtotal),
		}
		total += subtotal
	}

	return Payload{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Comment: form.Comment,
		Items:   items,
		Total:   catalog.FormatPrice(total),
	}
}
