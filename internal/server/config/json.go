package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

// JsonConfig is the JSON form of Config. Absent keys keep their defaults.
type JsonConfig struct {
	ListenAddr *string `json:"listen_addr"`
	SeedFile   *string `json:"seed_file"`
	LogLevel   *string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c or -config, if any.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != nil {
		cfg.ListenAddr = *jc.ListenAddr
	}
	if jc.SeedFile != nil {
		cfg.SeedFile = *jc.SeedFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
