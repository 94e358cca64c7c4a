package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/playfair/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// Every flag can also be set through a PLAYFAIR_ prefixed environment variable.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "playfair [flags] command [flags]",
		Short: "Playfair cipher utility",
		Long: `A Playfair cipher implementation.
Enciphers and deciphers text or files with a 5x5 key square built from a key,
leaving out one letter of the alphabet (q unless told otherwise).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "The key the square is built from")
	flags.StringP("ignore", "i", "q", "Lowercase letter left out of the key square")
	flags.Bool("debug", false, "Debug logging, including the key square and every substitution")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("show", "s", false, "Show the configuration and exit")

	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers in file mode, defaults to number of CPUs")
	flags.Bool("stats", false, "Print statistics after processing files")
	flags.BoolP("delete", "d", false, "Delete the original file after successful processing")
	flags.Bool("preserve-timestamps", false, "Keep the modification time of the original file")
	flags.String("encipher-ext", ".pf", "Suffix to append to enciphered files")
	flags.String("decipher-ext", "", "Suffix to append to deciphered files, after stripping the encipher suffix")
	flags.Bool("dry", false, "Show which files would be processed without writing anything")

	flags.StringSlice("include", nil, "Patterns (find -path semantics) a walked file must match")
	flags.StringSlice("exclude", nil, "Patterns (find -path semantics) excluding walked files")
	flags.String("include-from", "", "JSONC file with a list of include patterns")
	flags.String("exclude-from", "", "JSONC file with a list of exclude patterns")

	root.AddCommand(NewEncipherCommand(cfg), NewDecipherCommand(cfg), NewSquareCommand(cfg))

	return root
}
