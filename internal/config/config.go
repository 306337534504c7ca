// Package config defines the parsed retry invocation and its default values.
//
// A Config is filled in by the cli package: flags are bound straight into
// its fields, then ValidateFlags converts the raw retry count and records
// the command vector.
package config

import "strconv"

// DefaultRetries is the number of attempts made when --retries is not given.
const DefaultRetries = 3

// Config holds every value the retry loop consumes.
type Config struct {
	// Retries is the raw --retries value as typed by the user.
	Retries string
	// MaxRetries is Retries parsed as a signed 32-bit integer. Zero and
	// negative values are accepted and still mean one attempt.
	MaxRetries int

	// Command is the executable followed by its arguments. Never empty
	// once validated.
	Command []string

	Verbose bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Retries:    strconv.Itoa(DefaultRetries),
		MaxRetries: DefaultRetries,
	}
}
