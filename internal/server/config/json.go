package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tokengate/internal/flagx"
	"github.com/dmitrijs2005/tokengate/internal/timex"
)

// JSONConfig is the on-disk shape of Config. Durations accept both "240h"
// and integer nanoseconds.
type JSONConfig struct {
	EndpointAddrGRPC        string         `json:"endpoint_addr_grpc"`
	MetricsAddr             string         `json:"metrics_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	TokenIssuer             string         `json:"token_issuer"`
	TokenAudience           string         `json:"token_audience"`
	TokenValidityDuration   timex.Duration `json:"token_validity_duration"`
	AuthMode                string         `json:"auth_mode"`
	DefaultTokenBalance     int64          `json:"default_token_balance"`
	RequireConfirmedAccount bool           `json:"require_confirmed_account"`
	PublicBaseURL           string         `json:"public_base_url"`
}

// parseJSON overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current values. An unreadable or invalid file
// panics.
func parseJSON(config *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JSONConfig{
		EndpointAddrGRPC:        config.EndpointAddrGRPC,
		MetricsAddr:             config.MetricsAddr,
		DatabaseDSN:             config.DatabaseDSN,
		SecretKey:               config.SecretKey,
		TokenIssuer:             config.TokenIssuer,
		TokenAudience:           config.TokenAudience,
		TokenValidityDuration:   timex.Duration{Duration: config.TokenValidityDuration},
		AuthMode:                config.AuthMode,
		DefaultTokenBalance:     config.DefaultTokenBalance,
		RequireConfirmedAccount: config.RequireConfirmedAccount,
		PublicBaseURL:           config.PublicBaseURL,
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenIssuer = c.TokenIssuer
	config.TokenAudience = c.TokenAudience
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.AuthMode = c.AuthMode
	config.DefaultTokenBalance = c.DefaultTokenBalance
	config.RequireConfirmedAccount = c.RequireConfirmedAccount
	config.PublicBaseURL = c.PublicBaseURL
}
