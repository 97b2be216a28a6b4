// Package config loads runtime configuration for the tokengate CLI.
//
// Sources, later ones winning: built-in defaults, an optional JSON file
// given with -c/-config, then command-line flags.
//
//	-a string   address:port of the tokengate gRPC endpoint
//	-t int      per-call timeout (seconds)
//
// JSON keys: "server_endpoint_addr", "call_timeout" ("5s" or nanoseconds).
package config

import "time"

// Config holds runtime settings for the tokengate CLI.
type Config struct {
	ServerEndpointAddr string
	CallTimeout        time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CallTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
