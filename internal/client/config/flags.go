package config

import (
	"flag"
	"os"

	"github.com/postpilot/postpilot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   path to the local credential database (default from Config)
//	-l string   loopback address for the OAuth callback listener
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local credential database")
	fs.StringVar(&cfg.CallbackAddr, "l", cfg.CallbackAddr, "loopback address for the OAuth callback listener")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
