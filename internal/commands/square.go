package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/logic"
	"github.com/idelchi/playfair/internal/playfair"
)

// NewSquareCommand creates a new cobra command printing the key square.
func NewSquareCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "square [flags]",
		Aliases: []string{"sq"},
		Short:   "Print the 5x5 key square for a key",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, playfair.Encipher),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunSquare(cfg, streams(cmd, cfg))
		},
	}
}
