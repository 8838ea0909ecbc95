package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userholder/internal/flagx"
)

// JsonConfig is the on-disk shape of the configuration file.
type JsonConfig struct {
	HashAlgorithm    string `json:"hash_algorithm"`
	Argon2Time       uint32 `json:"argon2_time"`
	Argon2MemoryKiB  uint32 `json:"argon2_memory_kib"`
	Argon2Threads    uint8  `json:"argon2_threads"`
	LogLevel         string `json:"log_level"`
	LogFormat        string `json:"log_format"`
	ImportFile       string `json:"import_file"`
	MetricsNamespace string `json:"metrics_namespace"`
}

// parseJson loads values from the file named by -c/-config. Keys missing from
// the file keep their current value. Unreadable files or invalid JSON panic.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := JsonConfig{
		HashAlgorithm:    config.HashAlgorithm,
		Argon2Time:       config.Argon2Time,
		Argon2MemoryKiB:  config.Argon2MemoryKiB,
		Argon2Threads:    config.Argon2Threads,
		LogLevel:         config.LogLevel,
		LogFormat:        config.LogFormat,
		ImportFile:       config.ImportFile,
		MetricsNamespace: config.MetricsNamespace,
	}
	if err := json.Unmarshal(file, &c); err != nil {
		panic(err)
	}

	config.HashAlgorithm = c.HashAlgorithm
	config.Argon2Time = c.Argon2Time
	config.Argon2MemoryKiB = c.Argon2MemoryKiB
	config.Argon2Threads = c.Argon2Threads
	config.LogLevel = c.LogLevel
	config.LogFormat = c.LogFormat
	config.ImportFile = c.ImportFile
	config.MetricsNamespace = c.MetricsNamespace
}
