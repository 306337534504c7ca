// Package cli provides flag binding and validation for the retry CLI.
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/retry/internal/config"
)

// ErrNoCommand is returned when no command follows the flags.
var ErrNoCommand = errors.New("a command to run is required")

// BindFlags registers the retry flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to convert and check them.
//
// Flag parsing stops at the first positional argument, so everything from
// the command name onwards is handed to the command untouched.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVarP(&cfg.Retries, "retries", "r", strconv.Itoa(config.DefaultRetries), "Number of attempts before giving up")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Report each attempt on stderr")
}

// ValidateFlags parses the retry count and records the command vector.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cfg *config.Config, args []string) error {
	n, err := ParseRetries(cfg.Retries)
	if err != nil {
		return fmt.Errorf("--retries: %w", err)
	}
	cfg.MaxRetries = n

	if len(args) == 0 {
		return ErrNoCommand
	}
	cfg.Command = append([]string(nil), args...)

	return nil
}

// ParseRetries converts a raw --retries value. Any base-10 value that fits
// in a signed 32-bit integer is accepted, including zero and negatives.
func ParseRetries(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a 32-bit integer", raw)
	}
	return int(n), nil
}
