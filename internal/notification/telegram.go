package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/domain"
)

// TelegramNotifier posts order lifecycle messages to an operations channel.
// Buyer-directed delivery (email, in-app) belongs to an external collaborator;
// this stand-in keeps the fire-and-forget contract visible end to end.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderConfirmed(ctx context.Context, o *domain.Order) {
	text := fmt.Sprintf(
		"*Order confirmed*\n\nOrder: %s\nBuyer: %s\nTotal: %s %s",
		o.ID, o.BuyerID, o.Total.StringFixed(2), o.Currency,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, o *domain.Order, p *domain.Payment) {
	text := fmt.Sprintf(
		"*Payment failed*\n\nOrder: %s\nPayment: %s (%s, %s)\nReason: %s",
		o.ID, p.ID, p.Provider, p.Status, orDash(p.RejectionReason),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderExpired(ctx context.Context, o *domain.Order) {
	text := fmt.Sprintf(
		"*Order expired*\n\nOrder: %s\nBuyer: %s\nTickets released back to sale.",
		o.ID, o.BuyerID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
