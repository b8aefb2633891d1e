package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.BaseURL)
	assert.Equal(t, 60*time.Second, c.EntitlementRefreshInterval)
	assert.NotEmpty(t, c.DataDir)
	assert.Empty(t, c.DefaultLanguage, "language defaults to the system locale")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.EntitlementRefreshInterval)
}
