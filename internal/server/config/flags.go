package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-i string   JWT issuer
//	-u string   JWT audience
//	-t int      token validity, minutes
//	-mode       "session" or "bearer"
//	-b int      token balance of new accounts
//	-r          require a confirmed email before sign-in
//	-url        public base URL for confirmation links
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args,
		[]string{"-a", "-m", "-d", "-s", "-i", "-u", "-t", "-mode", "-b", "-r", "-url"},
		"-r")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer")
	fs.StringVar(&config.TokenAudience, "u", config.TokenAudience, "token audience")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.AuthMode, "mode", config.AuthMode, "auth mode: session or bearer")
	fs.Int64Var(&config.DefaultTokenBalance, "b", config.DefaultTokenBalance, "token balance of new accounts")
	fs.BoolVar(&config.RequireConfirmedAccount, "r", config.RequireConfirmedAccount, "require confirmed account")
	fs.StringVar(&config.PublicBaseURL, "url", config.PublicBaseURL, "public base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
