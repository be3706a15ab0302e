package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking lifecycle messages to the operations chat.
type TelegramNotifier struct {
	bot    sender
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

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New hold*\n\n"+"Booking: `%s`\n"+"Listing: `%s`\n"+"Stay: %s\n"+"Guests: %d\n"+"Amount: %s\n"+"Order: `%s`",
		b.ID, b.ListingID, stay(b), b.Guests, amount(b), b.PaymentOrderRef,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+"Booking: `%s`\n"+"Listing: `%s`\n"+"Stay: %s\n"+"Amount: %s\n"+"Payment: `%s`",
		b.ID, b.ListingID, stay(b), amount(b), b.PaymentProofRef,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Hold expired (payment not received)*\n\n"+"Booking: `%s`\n"+"Listing: `%s`\n"+"Stay: %s\n"+"Order: `%s`",
		b.ID, b.ListingID, stay(b), b.PaymentOrderRef,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrphanedPayment(ctx context.Context, b *domain.Booking, paymentRef string) {
	text := fmt.Sprintf(
		"*Payment after hold expired, refund required*\n\n"+"Booking: `%s`\n"+"Listing: `%s`\n"+"Stay: %s\n"+"Amount: %s\n"+"Order: `%s`\n"+"Payment: `%s`",
		b.ID, b.ListingID, stay(b), amount(b), b.PaymentOrderRef, paymentRef,
	)
	n.send(ctx, text)
}

func stay(b *domain.Booking) string {
	return b.CheckIn.Format(dates.DayLayout) + " to " + b.CheckOut.Format(dates.DayLayout)
}

func amount(b *domain.Booking) string {
	return fmt.Sprintf("%d.%02d %s", b.PriceTotal/100, b.PriceTotal%100, b.Currency)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
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
