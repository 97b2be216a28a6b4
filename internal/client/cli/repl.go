package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Confirm(ctx context.Context, args []string) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ChangeUsername(ctx context.Context, args []string) error
	Capabilities(ctx context.Context, args []string) error
	SetCapabilities(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit".
//
//	Not logged in:
//	  - register             create an account
//	  - confirm <id> <code>  confirm an email address
//	  - login                sign in
//
//	Logged in:
//	  - whoami               show the profile
//	  - refresh              renew the bearer token
//	  - passwd               change password
//	  - rename <name>        change user name
//	  - caps <domain>        show capability access
//	  - setcaps <domain> <bits>
//	  - logout               sign out
//
// Command errors are reported by the handlers themselves and do not stop
// the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tg %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, refresh, passwd, rename, caps, setcaps, logout, ping, exit")
			} else {
				printlnFn("Available commands: register, confirm, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "confirm":
			_ = a.Confirm(ctx, args)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "rename":
			_ = a.ChangeUsername(ctx, args)

		case "caps":
			_ = a.Capabilities(ctx, args)

		case "setcaps":
			_ = a.SetCapabilities(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
