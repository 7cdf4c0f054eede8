package auth

import "time"

// Strategy issues and verifies signed identity tokens. Identity is the
// username of the authenticated account.
type Strategy interface {
	IssueToken(identity string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
