package utils

import "regexp"

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailValid performs a light-weight shape check; the unique index on the
// users collection is the real gatekeeper.
func IsEmailValid(e string) bool {
	return emailRe.MatchString(e)
}

// IsPasswordValid enforces the password policy (at least 6 characters).
func IsPasswordValid(p string) bool {
	return len(p) >= 6
}
