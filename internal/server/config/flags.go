package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   listen address (e.g., "127.0.0.1:3000")
//	-s string   seed file
//	-v string   log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-l", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.SeedFile, "s", cfg.SeedFile, "JSON seed file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
