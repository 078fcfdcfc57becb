package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/postpilot/postpilot/internal/flagx"
	"github.com/postpilot/postpilot/internal/timex"
)

// JsonConfig is the intermediate DTO for the JSON configuration file. It
// uses timex.Duration for the timeout field, which allows parsing both
// string values such as "30s" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	ServerBaseURL      string         `json:"server_base_url"`
	CallbackAddr       string         `json:"callback_addr"`
	DatabasePath       string         `json:"database_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	GenerateRatePerMin int            `json:"generate_rate_per_min"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values. If the file cannot be read or contains invalid
// JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.CallbackAddr != "" {
		config.CallbackAddr = c.CallbackAddr
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
	if c.GenerateRatePerMin != 0 {
		config.GenerateRatePerMin = c.GenerateRatePerMin
	}
}
