package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/logic"
	"github.com/idelchi/playfair/internal/playfair"
)

// NewEncipherCommand creates a new cobra command for the encipher subcommand.
func NewEncipherCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encipher [flags] [plaintext...|paths...]",
		Aliases: []string{"enc"},
		Short:   "Encipher text or files",
		Long: `Encipher the plaintext given as arguments, or read from standard input.
With --files the arguments are files or directories, and each file is written
enciphered next to the original with the encipher suffix appended.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, playfair.Encipher),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, streams(cmd, cfg))
		},
	}

	cmd.Flags().Bool("files", false, "Treat arguments as files or directories to encipher")

	return cmd
}
