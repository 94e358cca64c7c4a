// Package config holds the runtime configuration of the playfair tool.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/playfair/internal/playfair"
)

// ErrIgnoreLetter is returned when the ignore character is not a single lowercase letter a-z.
var ErrIgnoreLetter = errors.New("ignore character must be a single lowercase letter a-z")

// Suffixes holds the file extensions used in file mode.
type Suffixes struct {
	// Encipher is appended to enciphered files
	Encipher string `mapstructure:"encipher-ext" validate:"required" yaml:"encipher"`

	// Decipher is appended to deciphered files after stripping Encipher
	Decipher string `mapstructure:"decipher-ext" yaml:"decipher"`
}

// Config contains all settings of a single invocation.
type Config struct {
	// Common flags
	Key    string `validate:"required" yaml:"key"`
	Ignore string `validate:"letter" yaml:"ignore"`
	Debug  bool   `yaml:"debug"`
	Quiet  bool   `yaml:"quiet"`
	Show   bool   `yaml:"-"`

	// File mode
	Files              bool     `yaml:"files"`
	Parallel           int      `validate:"min=1" yaml:"parallel"`
	Stats              bool     `yaml:"stats"`
	Delete             bool     `yaml:"delete"`
	PreserveTimestamps bool     `mapstructure:"preserve-timestamps" yaml:"preserve-timestamps"`
	Suffixes           Suffixes `mapstructure:",squash" yaml:"suffixes"`
	Dry                bool     `yaml:"dry"`

	// Directory walk filtering
	Include     []string `yaml:"include,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
	IncludeFrom string   `mapstructure:"include-from" validate:"omitempty,file" yaml:"include-from,omitempty"`
	ExcludeFrom string   `mapstructure:"exclude-from" validate:"omitempty,file" yaml:"exclude-from,omitempty"`

	// Set by the subcommand
	Mode playfair.Mode `mapstructure:"-" yaml:"mode"`

	// Positional arguments: text, or paths in file mode
	Args []string `mapstructure:"-" yaml:"args"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := registerLetter(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Tag() == "letter" {
					return fmt.Errorf("validating configuration: %w: got %q", ErrIgnoreLetter, c.Ignore)
				}
			}
		}

		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Files && len(c.Args) == 0 {
		return errors.New("validating configuration: file mode requires at least one path")
	}

	return nil
}

// IgnoreLetter returns the excluded letter. Validate guarantees it is a lowercase letter.
// Choosing the filler letter is allowed but warned about.
func (c Config) IgnoreLetter(logger *slog.Logger) rune {
	r, _ := utf8.DecodeRuneInString(c.Ignore)

	if r == playfair.Filler {
		logger.Warn("ignore character equals the filler letter, doubled or odd-length text will fail",
			"ignore", string(r))
	}

	return r
}

// Text joins the positional arguments into the message to transform.
func (c Config) Text() string {
	return strings.Join(c.Args, " ")
}

// registerLetter adds a validator requiring a single lowercase ASCII letter.
// Uppercase is rejected rather than folded, so the excluded letter is always the one typed.
func registerLetter(validate *validator.Validate) error {
	if err := validate.RegisterValidation("letter", validateLetter); err != nil {
		return fmt.Errorf("registering letter validation: %w", err)
	}

	return nil
}

func validateLetter(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return len(value) == 1 && value[0] >= 'a' && value[0] <= 'z'
}
