package config

import (
	"flag"
	"os"
	"time"

	"github.com/agoramujeres/agora-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend (default from Config)
//	-i int      subscription refresh interval in seconds (default from Config)
//	-d string   local data directory
//	-l string   default language (es, en)
//	-debug      enable verbose logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-l", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend")
	refreshInterval := fs.Int("i", int(cfg.EntitlementRefreshInterval.Seconds()), "subscription refresh interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.StringVar(&cfg.DefaultLanguage, "l", cfg.DefaultLanguage, "default language")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.EntitlementRefreshInterval = time.Duration(*refreshInterval) * time.Second
}
