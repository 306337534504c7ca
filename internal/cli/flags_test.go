package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/retry/internal/config"
)

func newTestCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	return cmd
}

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCmd(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"true"}))

	assert.Equal(t, "3", cfg.Retries)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, []string{"true"}, cmd.Flags().Args())
}

func TestBindFlags_RetriesForms(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"long form", []string{"--retries", "5", "true"}, "5"},
		{"long form equals", []string{"--retries=6", "true"}, "6"},
		{"short form", []string{"-r", "7", "true"}, "7"},
		{"short form attached", []string{"-r8", "true"}, "8"},
		{"negative", []string{"--retries", "-2", "true"}, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newTestCmd(cfg)

			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.expected, cfg.Retries)
		})
	}
}

func TestBindFlags_VerboseFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"not set", []string{"true"}, false},
		{"long form", []string{"--verbose", "true"}, true},
		{"short form", []string{"-v", "true"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newTestCmd(cfg)

			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.expected, cfg.Verbose)
		})
	}
}

func TestBindFlags_TrailingArgsBelongToCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantRetries string
		wantArgs    []string
	}{
		{"double dash", []string{"--retries", "3", "--", "false"}, "3", []string{"false"}},
		{"flag after command", []string{"ls", "-r", "9"}, "3", []string{"ls", "-r", "9"}},
		{"own flags after command", []string{"-r", "2", "sh", "-c", "exit 3", "--retries", "9"}, "2", []string{"sh", "-c", "exit 3", "--retries", "9"}},
		{"help after command", []string{"grep", "--help"}, "3", []string{"grep", "--help"}},
		{"dash-prefixed command after double dash", []string{"--", "-weird", "x"}, "3", []string{"-weird", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newTestCmd(cfg)

			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.wantRetries, cfg.Retries)
			assert.Equal(t, tt.wantArgs, cmd.Flags().Args())
		})
	}
}

func TestParseRetries(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"0", 0, false},
		{"-1", -1, false},
		{"+4", 4, false},
		{"2147483647", 2147483647, false},
		{"-2147483648", -2147483648, false},
		{"2147483648", 0, true},
		{"4294967296", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
		{"0x10", 0, true},
		{" 3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRetries(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot parse")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFlags_StoresRetriesAndCommand(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Retries = "5"
	args := []string{"sh", "-c", "exit 7"}

	require.NoError(t, ValidateFlags(cfg, args))

	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, args, cfg.Command)

	// The stored command must not alias the caller's slice.
	args[0] = "mutated"
	assert.Equal(t, "sh", cfg.Command[0])
}

func TestValidateFlags_InvalidRetries(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Retries = "lots"

	err := ValidateFlags(cfg, []string{"true"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--retries")
	assert.Contains(t, err.Error(), `"lots"`)
	assert.Nil(t, cfg.Command)
}

func TestValidateFlags_NoCommand(t *testing.T) {
	cfg := config.NewDefaultConfig()

	err := ValidateFlags(cfg, nil)
	assert.ErrorIs(t, err, ErrNoCommand)
}
