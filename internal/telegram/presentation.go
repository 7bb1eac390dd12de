package telegram

import (
	"fmt"
	"strings"

	"alanya-store/internal/order"
)

const notProvided = "Не указано"

// OrderMsg renders an order as the HTML notification message posted to the
// shop's chat.
func OrderMsg(p order.Payload) string {
	var sb strings.Builder
	sb.WriteString("🛍 <b>Новый заказ Alanya Store</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString(fmt.Sprintf("👤 <b>Клиент:</b> %s", orFallback(p.Name, notProvided)))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("📱 <b>Телефон:</b> %s", orFallback(p.Phone, notProvided)))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("📧 <b>Email:</b> %s", orFallback(p.Email, notProvided)))
	sb.WriteString(breakLine(2))
	sb.WriteString("📦 <b>Товары:</b>")
	sb.WriteString(breakLine(1))

	for _, item := range p.Items {
		name := orFallback(item.Name, "Товар")
		price := orFallback(item.Price, "0 ₽")
		sb.WriteString(fmt.Sprintf("• %s - %s", name, price))
		sb.WriteString(breakLine(1))
	}

	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("💰 <b>Итого:</b> %s", orFallback(p.Total, "0 ₽")))

	if p.Comment != "" {
		sb.WriteString(breakLine(2))
		sb.WriteString(fmt.Sprintf("💬 <b>Комментарий:</b> %s", p.Comment))
	}

	return sb.String()
}

func breakLine(n int) string {
	return strings.Repeat("\n", n)
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
