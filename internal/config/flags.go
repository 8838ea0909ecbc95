package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userholder/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   hash algorithm (md5, argon2id)
//	-l string   log level
//	-f string   log format (text, json)
//	-i string   CSV file to preview
//	-n string   metrics namespace
//
// Only these flags are read from os.Args; -c/-config is handled by parseJson.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-f", "-i", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HashAlgorithm, "a", config.HashAlgorithm, "password hash algorithm")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.StringVar(&config.ImportFile, "i", config.ImportFile, "CSV import file")
	fs.StringVar(&config.MetricsNamespace, "n", config.MetricsNamespace, "metrics namespace")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
