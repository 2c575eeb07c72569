package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avtomir/avtomir-backend/pkg/config"
	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

// Client wraps the Telegram Bot API for the dealership channel. A nil
// client is valid and silently disabled, so callers never need to
// branch on whether credentials were provided.
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New authenticates against the Bot API using the provided credentials.
func New(ctx context.Context, cfg config.TelegramConfig, logg *logger.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("telegram bot token and chat id are required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("authenticating telegram bot: %w", err)
	}
	if cfg.RequestTimeout > 0 {
		if httpClient, ok := bot.Client.(*http.Client); ok {
			httpClient.Timeout = cfg.RequestTimeout
		}
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "bot_username", bot.Self.UserName)
		logg.Info(ctx, "telegram bot authenticated")
	}

	return &Client{bot: bot, chatID: cfg.ChatID}, nil
}

// Enabled reports whether the channel can deliver messages.
func (c *Client) Enabled() bool {
	return c != nil && c.bot != nil && c.chatID != 0
}

// Notify sends a Markdown message to the configured dealership chat.
func (c *Client) Notify(ctx context.Context, text string) error {
	if !c.Enabled() {
		return nil
	}
	return c.SendMessage(ctx, c.chatID, text)
}

// SendMessage sends a Markdown message to an arbitrary chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c == nil || c.bot == nil {
		return fmt.Errorf("telegram client not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// Updates returns the long-polling update channel for the bot worker.
func (c *Client) Updates(offset, timeoutSeconds int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(offset)
	u.Timeout = timeoutSeconds
	return c.bot.GetUpdatesChan(u)
}

// StopUpdates shuts the long-polling loop down.
func (c *Client) StopUpdates() {
	if c != nil && c.bot != nil {
		c.bot.StopReceivingUpdates()
	}
}

// NotifyNewPreOrder formats and delivers the pre-order notification.
func (c *Client) NotifyNewPreOrder(ctx context.Context, order *models.PreOrder, car *models.Car) error {
	return c.Notify(ctx, NewOrderMessage(order, car))
}
