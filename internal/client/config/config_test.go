package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerBaseURL)
	assert.Equal(t, "127.0.0.1:8917", c.CallbackAddr)
	assert.Equal(t, "postpilot.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 6, c.GenerateRatePerMin)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("POSTPILOT_SERVER_URL", "https://api.example.org")
	t.Setenv("POSTPILOT_REQUEST_TIMEOUT", "5s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.org", c.ServerBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	// untouched by env
	assert.Equal(t, "postpilot.db", c.DatabasePath)
	assert.Equal(t, 6, c.GenerateRatePerMin)
}

func TestJsonConfig_Unmarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"server_base_url": "https://api.example.org",
		"request_timeout": "45s",
		"generate_rate_per_min": 2
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	os.Args = []string{"postpilot", "-config", path}
	defer func() { os.Args = origArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.example.org", c.ServerBaseURL)
	assert.Equal(t, 45*time.Second, c.RequestTimeout)
	assert.Equal(t, 2, c.GenerateRatePerMin)
	// absent from the file, keeps the default
	assert.Equal(t, "127.0.0.1:8917", c.CallbackAddr)
}
