package config

import (
	"time"

	"github.com/agoramujeres/agora-client/internal/filex"
)

// Config holds runtime settings for the Ágora client.
//
// Fields:
//   - BaseURL: root URL of the backend (the "/api" prefix is added by the
//     gateway, not here).
//   - EntitlementRefreshInterval: how often the subscription status is
//     re-fetched while the app runs.
//   - DataDir: directory for the local metadata database and identity file.
//   - DefaultLanguage: language used when no stored preference exists;
//     empty means "follow the system locale".
//   - Latitude/Longitude: coordinates for the weather snapshot attached to
//     diary entries. Zero values disable the weather lookup.
//   - Debug: enables verbose logging.
type Config struct {
	BaseURL                    string
	EntitlementRefreshInterval time.Duration
	DataDir                    string
	DefaultLanguage            string
	Latitude                   float64
	Longitude                  float64
	Debug                      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.EntitlementRefreshInterval = 60 * time.Second
	c.DataDir = filex.DefaultDataDir()
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if one exists), a JSON file
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
