// Package config handles configuration for the userholder process, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"fmt"

	"github.com/dmitrijs2005/userholder/internal/cryptox"
)

// Config holds runtime settings.
//
// Fields:
//   - HashAlgorithm: "md5" (compatible with exported salt:hash pairs) or "argon2id".
//   - Argon2Time / Argon2MemoryKiB / Argon2Threads: argon2id cost parameters.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - ImportFile: CSV rows to preview on start; empty means stdin.
//   - MetricsNamespace: Prometheus namespace for registry counters.
type Config struct {
	HashAlgorithm    string `env:"USERHOLDER_HASH_ALGORITHM"`
	Argon2Time       uint32 `env:"USERHOLDER_ARGON2_TIME"`
	Argon2MemoryKiB  uint32 `env:"USERHOLDER_ARGON2_MEMORY_KIB"`
	Argon2Threads    uint8  `env:"USERHOLDER_ARGON2_THREADS"`
	LogLevel         string `env:"USERHOLDER_LOG_LEVEL"`
	LogFormat        string `env:"USERHOLDER_LOG_FORMAT"`
	ImportFile       string `env:"USERHOLDER_IMPORT_FILE"`
	MetricsNamespace string `env:"USERHOLDER_METRICS_NAMESPACE"`
}

// LoadDefaults populates Config with development defaults. MD5 is the default
// only so that previously exported hashes keep verifying.
func (c *Config) LoadDefaults() {
	p := cryptox.DefaultArgon2idParams()

	c.HashAlgorithm = cryptox.AlgorithmMD5
	c.Argon2Time = p.Time
	c.Argon2MemoryKiB = p.MemoryKiB
	c.Argon2Threads = p.Threads
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ImportFile = ""
	c.MetricsNamespace = "userholder"
}

// Argon2Params returns the argon2id parameters.
func (c *Config) Argon2Params() cryptox.Argon2idParams {
	return cryptox.Argon2idParams{
		Time:      c.Argon2Time,
		MemoryKiB: c.Argon2MemoryKiB,
		Threads:   c.Argon2Threads,
		KeyLen:    cryptox.DefaultArgon2idParams().KeyLen,
	}
}

// Validate rejects unknown algorithm and log format names.
func (c *Config) Validate() error {
	switch c.HashAlgorithm {
	case cryptox.AlgorithmMD5, cryptox.AlgorithmArgon2id:
	default:
		return fmt.Errorf("unknown hash algorithm %q", c.HashAlgorithm)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
