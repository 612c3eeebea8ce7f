package entity

import "time"

// SummaryRecord represents a saved (input, summary) pair owned by a user.
// Records are append-only: once created they are never updated, and reads
// are always scoped to the owning user.
type SummaryRecord struct {
	ID        int64
	UserID    int64
	InputText string
	Summary   string
	CreatedAt time.Time
}
