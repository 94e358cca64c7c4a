// Command playfair enciphers and deciphers text with the Playfair cipher.
package main

import (
	"os"

	"github.com/idelchi/playfair/internal/commands"
	"github.com/idelchi/playfair/internal/config"
)

// version is set at build time via ldflags.
var version = "unknown - unofficial build"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
