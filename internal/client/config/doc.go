// Package config loads runtime configuration for the user console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote collection resource
//	-t int      request timeout (seconds)
//	-l string   listen address of the web console
//	-v string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:3000",
//	  "request_timeout": "10s",
//	  "listen_addr": "127.0.0.1:8080",
//	  "log_level": "debug"
//	}
//
// Keys missing from the file keep their previous value.
//
// This package does not read environment variables.
package config
