package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("USERHOLDER_HASH_ALGORITHM", "argon2id")
	t.Setenv("USERHOLDER_ARGON2_THREADS", "2")
	t.Setenv("USERHOLDER_LOG_FORMAT", "json")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "argon2id", cfg.HashAlgorithm)
	assert.Equal(t, uint8(2), cfg.Argon2Threads)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel, "unset variables keep defaults")
}

func TestParseEnv_MalformedPanics(t *testing.T) {
	t.Setenv("USERHOLDER_ARGON2_TIME", "soon")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
