package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/agoramujeres/agora-client/internal/flagx"
	"github.com/agoramujeres/agora-client/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so intervals can be written either as strings like
// "90s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JSONConfig struct {
	BaseURL                    string          `json:"base_url"`
	EntitlementRefreshInterval *timex.Duration `json:"entitlement_refresh_interval"`
	DataDir                    string          `json:"data_dir"`
	DefaultLanguage            string          `json:"default_language"`
	Latitude                   *float64        `json:"latitude"`
	Longitude                  *float64        `json:"longitude"`
	Debug                      *bool           `json:"debug"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag; when neither is given,
// no JSON is loaded. Read or unmarshal errors panic, the caller should
// recover if it wants to continue without the file.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.EntitlementRefreshInterval != nil {
		cfg.EntitlementRefreshInterval = time.Duration(jc.EntitlementRefreshInterval.Duration)
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DefaultLanguage != "" {
		cfg.DefaultLanguage = jc.DefaultLanguage
	}
	if jc.Latitude != nil {
		cfg.Latitude = *jc.Latitude
	}
	if jc.Longitude != nil {
		cfg.Longitude = *jc.Longitude
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
