package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays values from POSTPILOT_* environment variables onto the
// provided Config. Variables that are unset leave the current values
// untouched, so env acts as a pure overlay over defaults and the JSON file.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
