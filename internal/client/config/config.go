package config

import "time"

// Config holds runtime settings for the PostPilot CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - CallbackAddr: loopback address the OAuth callback listener binds to.
//     It must match the redirect URI registered with the backend.
//   - DatabasePath: sqlite file holding the session credential.
//   - RequestTimeout: per-request timeout for API calls.
//   - GenerateRatePerMin: client-side cap on generation requests, matching
//     the free-tier limits of the backing model provider.
type Config struct {
	ServerBaseURL      string        `env:"POSTPILOT_SERVER_URL"`
	CallbackAddr       string        `env:"POSTPILOT_CALLBACK_ADDR"`
	DatabasePath       string        `env:"POSTPILOT_DATABASE_PATH"`
	RequestTimeout     time.Duration `env:"POSTPILOT_REQUEST_TIMEOUT"`
	GenerateRatePerMin int           `env:"POSTPILOT_GENERATE_RATE_PER_MIN"`
}

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.CallbackAddr = "127.0.0.1:8917"
	c.DatabasePath = "postpilot.db"
	c.RequestTimeout = 30 * time.Second
	c.GenerateRatePerMin = 6
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
