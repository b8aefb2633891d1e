// Package config assembles the client's runtime settings from layered
// sources: built-in defaults, environment variables (optionally loaded
// from a .env file), a JSON config file, and command-line flags. Later
// sources override earlier ones.
package config
