// Package cli provides the interactive tokengate command-line client.
//
// It wires configuration and the gRPC client into a small REPL: register
// and confirm an account, sign in and out, inspect the profile, change the
// password or user name, and read or change metered capability access.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
