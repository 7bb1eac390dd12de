package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"alanya-store/internal/order"
	"alanya-store/internal/pkg/config"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Notifier delivers an incoming order to the shop's Telegram chat.
type Notifier interface {
	SendOrder(ctx context.Context, payload order.Payload) error
}

type DefaultNotifier struct {
	api    *bot.Bot
	chatID string
}

func NewNotifier(cfg *config.TelegramCfg) (Notifier, error) {
	b, err := bot.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}

	return &DefaultNotifier{
		api:    b,
		chatID: cfg.ChatID,
	}, nil
}

func (n *DefaultNotifier) SendOrder(ctx context.Context, payload order.Payload) error {
	_, err := n.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      OrderMsg(payload),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		slog.Error("Error sending order notification", "error", err)
		return err
	}
	return nil
}
