package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"hash_algorithm":    "argon2id",
		"argon2_time":       3,
		"argon2_memory_kib": 8192,
		"argon2_threads":    2,
		"log_level":         "debug",
		"log_format":        "json",
		"import_file":       "users.csv",
		"metrics_namespace": "ns",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level": "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "argon2id", cfg.HashAlgorithm)
		assert.Equal(t, uint32(3), cfg.Argon2Time)
		assert.Equal(t, uint32(8192), cfg.Argon2MemoryKiB)
		assert.Equal(t, uint8(2), cfg.Argon2Threads)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "users.csv", cfg.ImportFile)
		assert.Equal(t, "ns", cfg.MetricsNamespace)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "md5", cfg.HashAlgorithm)
		assert.Equal(t, "userholder", cfg.MetricsNamespace)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{LogLevel: "error"}
		parseJson(cfg)

		assert.Equal(t, &Config{LogLevel: "error"}, cfg)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "absent.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
