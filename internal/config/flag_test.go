package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "argon2id", "-l", "debug", "-f", "json", "-i", "users.csv", "-n", "ns"},
			expected: &Config{
				HashAlgorithm:    "argon2id",
				LogLevel:         "debug",
				LogFormat:        "json",
				ImportFile:       "users.csv",
				MetricsNamespace: "ns",
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-x", "1", "-i", "rows.csv"},
			expected: &Config{
				ImportFile: "rows.csv",
			},
		},
		{
			name:        "flag without value",
			args:        []string{"cmd", "-a"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
