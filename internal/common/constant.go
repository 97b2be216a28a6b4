// Package common contains shared constants and sentinel errors used across
// tokengate components.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key carrying a bearer token.
	AccessTokenHeaderName = "access_token"

	// SessionHeaderName is the gRPC metadata key carrying a server-side
	// session id. The server sets it on login in session mode and the client
	// echoes it back on every later call.
	SessionHeaderName = "session_id"
)
