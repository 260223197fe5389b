package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"water-advisor/internal/telegram"
)

func newBotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the advisor as a Telegram bot",
		Long:  `Answers /audit commands in Telegram chats. Requires TELEGRAM_BOT_TOKEN.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.TelegramToken == "" {
				return errors.New("TELEGRAM_BOT_TOKEN is required")
			}

			bot, err := telegram.NewBot(a.cfg.TelegramToken, a.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			bot.Run(ctx)
			return nil
		},
	}
}
