// Package commands provides the command-line interface for the playfair tool.
//
// It implements commands for:
//   - enciphering
//   - deciphering
//   - printing the key square
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/logic"
	"github.com/idelchi/playfair/internal/playfair"
)

// envPrefix is the prefix of environment variables overriding flags, e.g. PLAYFAIR_KEY.
const envPrefix = "PLAYFAIR"

// preRun returns a PreRunE handler that merges flags and environment into cfg,
// stores mode and positional args and validates the configuration.
func preRun(cfg *config.Config, mode playfair.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vip := viper.New()

		vip.SetEnvPrefix(envPrefix)
		vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		vip.AutomaticEnv()

		if err := vip.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := vip.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Mode = mode
		cfg.Args = args

		return cfg.Validate()
	}
}

// streams wires the command's standard streams and a logger honoring --debug and --quiet.
func streams(cmd *cobra.Command, cfg *config.Config) logic.IO {
	level := slog.LevelInfo

	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return logic.IO{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Logger: logger,
	}
}
