package models

import "strings"

// UserRef identifies a platform account by its email address. Sessions and
// slots store these denormalized references instead of foreign keys; lookups
// against the account service happen at read time.
type UserRef string

func (r UserRef) String() string { return string(r) }

// Valid reports whether the reference looks like an email address.
func (r UserRef) Valid() bool {
	s := string(r)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\n")
}
