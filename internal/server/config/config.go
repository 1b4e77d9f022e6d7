// Package config handles configuration for the demo collection API,
// including defaults, JSON overlay, and command-line flags.
package config

import "os"

// Config holds runtime settings for the demo collection API.
//
// Fields:
//   - ListenAddr: host:port the API binds to.
//   - SeedFile: optional JSON array of user records loaded at startup instead
//     of the built-in ten.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr string
	SeedFile   string
	LogLevel   string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:3000"
	c.SeedFile = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
