// Package client is the gRPC client of the tokengate Identity service.
//
// GRPCClient wraps the generated IdentityClient and carries the caller's
// credential: a bearer token is sent as access_token metadata, a session id
// as session_id. Both are captured from successful Login and Register
// calls, so callers never handle them directly.
//
// Business failures come back as an invalid pb.Status, not as errors.
// Transport failures map to ErrUnavailable or ErrUnauthorized.
package client
