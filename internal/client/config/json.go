package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tokengate/internal/flagx"
	"github.com/dmitrijs2005/tokengate/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling.
type JSONConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	CallTimeout        timex.Duration `json:"call_timeout"`
}

// parseJSON overlays cfg with the file named by -c/-config. Keys absent from
// the file keep their current values. Read or unmarshal errors panic.
func parseJSON(cfg *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JSONConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		CallTimeout:        timex.Duration{Duration: cfg.CallTimeout},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.CallTimeout = jc.CallTimeout.Duration
}
