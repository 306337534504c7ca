package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/retry/internal/config"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()

	assert.Equal(t, "3", cfg.Retries)
	assert.Equal(t, config.DefaultRetries, cfg.MaxRetries)
	assert.Empty(t, cfg.Command)
	assert.False(t, cfg.Verbose)
}

func TestNewDefaultConfigReturnsFreshValue(t *testing.T) {
	a := config.NewDefaultConfig()
	b := config.NewDefaultConfig()

	a.MaxRetries = 10
	a.Command = []string{"true"}

	assert.Equal(t, config.DefaultRetries, b.MaxRetries)
	assert.Empty(t, b.Command)
}
