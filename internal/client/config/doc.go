// Package config loads runtime configuration for the PostPilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the POSTPILOT_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   path to the local credential database
//	-l string   loopback address for the OAuth callback listener
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the request timeout, so the value
// can be either a string like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "callback_addr": "127.0.0.1:8917",
//	  "database_path": "postpilot.db",
//	  "request_timeout": "30s",
//	  "generate_rate_per_min": 6
//	}
package config
