package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"water-advisor/internal/config"
	"water-advisor/internal/observability"
)

// app carries what every subcommand needs once the root has set up.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the water-advisor command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "water-advisor",
		Short: "Estimate household water use and suggest fixes",
		Long: `water-advisor computes a household's daily water footprint from a few habits
(family size, shower time, laundry loads, RO purifier) and reports a verdict
with recommendations. It runs as a web form, a Telegram bot or a one-shot CLI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.LogLevel = "debug"
				cfg.LogFormat = "console"
			}

			a.cfg = cfg
			a.logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newServeCmd(a), newAuditCmd(a), newBotCmd(a))

	return cmd
}
