package model

import "time"

// User represents a registered account of the tracker. Username is the
// sole lookup key and is unique; the record is immutable after creation.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
