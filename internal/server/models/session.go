package models

import "time"

// Session is a server-side sign-in. It carries no claims; the id is the
// whole credential.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
