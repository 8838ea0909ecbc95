package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays USERHOLDER_* environment variables. Unset variables
// leave the current value in place. Malformed values panic, like the other
// config sources.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
