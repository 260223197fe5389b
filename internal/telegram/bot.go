// Package telegram exposes the advisor as a Telegram chat bot.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"water-advisor/internal/engine"
)

const (
	welcomeText = "Welcome to the Smart Water Usage Advisor! Use /audit to see your Water Footprint or /help for more information."
	helpText    = "Available commands:\n" +
		"/start - Start the bot\n" +
		"/audit <family size> <shower minutes> <laundry loads per week> <Yes|No> - Audit your household\n" +
		"/help - Show this help message\n\n" +
		"Example: /audit 4 10 5 Yes"
	unknownText = "Unknown command. Use /help to see available commands."
)

// Bot handles interactions with the Telegram API.
type Bot struct {
	bot    *tgbotapi.BotAPI
	logger zerolog.Logger
}

func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{bot: bot, logger: logger}, nil
}

// pollTimeout bounds one long poll, and with it how long Run can keep
// going after ctx is cancelled.
const pollTimeout = 5

// Run polls for updates until ctx is cancelled. The poll in flight at
// cancellation is allowed to finish, so Run returns within pollTimeout
// seconds.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info().Str("account", b.bot.Self.UserName).Msg("authorized on telegram")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.logger.Info().Int("max_wait_seconds", pollTimeout).Msg("stopping telegram updates")
		b.bot.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, Reply(update.Message.Command(), update.Message.CommandArguments()))
		if _, err := b.bot.Send(msg); err != nil {
			b.logger.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("send reply")
		}
	}
}

// Reply computes the answer to a chat command. An empty command is a
// plain message.
func Reply(command, args string) string {
	switch command {
	case "start":
		return welcomeText
	case "help":
		return helpText
	case "audit":
		req, err := ParseAuditArgs(args)
		if err != nil {
			return err.Error()
		}
		return engine.Audit(req.Input())
	default:
		return unknownText
	}
}
