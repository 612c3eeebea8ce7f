// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as User and
// SummaryRecord, along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account in the system.
// The password is never stored in plain text; PasswordHash holds a salted
// bcrypt digest. Users are immutable after registration.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}
