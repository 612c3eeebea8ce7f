package repository

import (
	"context"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
)

// SummaryRepository persists saved summaries. Writes are append-only:
// there is no update or delete operation.
type SummaryRepository interface {
	// Save inserts a new summary record and returns its generated ID.
	// Each call creates a distinct record, even for identical arguments.
	Save(ctx context.Context, record *entity.SummaryRecord) (int64, error)
	// ListForUser retrieves every record owned by the given user, ordered by
	// creation time ascending (ID ascending as a stable tiebreak). The owner
	// filter is mandatory; there is no unscoped read.
	ListForUser(ctx context.Context, userID int64) ([]*entity.SummaryRecord, error)
}
