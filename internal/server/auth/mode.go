package auth

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a verified identity is turned into a credential. It is
// process-wide configuration, injected at construction time.
type Mode string

const (
	// ModeSession establishes a server-side session; no token leaves the server.
	ModeSession Mode = "session"
	// ModeBearer hands out signed, self-contained tokens.
	ModeBearer Mode = "bearer"
)

var ErrUnknownMode = errors.New("unknown auth mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSession:
		return ModeSession, nil
	case ModeBearer, "jwt":
		return ModeBearer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string { return string(m) }
