package accounts

import "strings"

// NormalizeEmail is the form used for uniqueness and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUserName is the form used for uniqueness.
func NormalizeUserName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
