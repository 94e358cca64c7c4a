package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/logic"
	"github.com/idelchi/playfair/internal/playfair"
)

// NewDecipherCommand creates a new cobra command for the decipher subcommand.
func NewDecipherCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decipher [flags] [ciphertext...|paths...]",
		Aliases: []string{"dec"},
		Short:   "Decipher text or files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, playfair.Decipher),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, streams(cmd, cfg))
		},
	}

	cmd.Flags().Bool("files", false, "Treat arguments as files or directories holding enciphered text")

	return cmd
}
