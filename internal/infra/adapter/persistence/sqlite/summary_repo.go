package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
)

// SummaryRepo is the SQLite implementation of repository.SummaryRepository.
type SummaryRepo struct {
	db *sql.DB
}

func NewSummaryRepo(db *sql.DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

func (r *SummaryRepo) Save(ctx context.Context, s *entity.SummaryRecord) (int64, error) {
	s.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO summaries (user_id, input_text, summary, created_at)
VALUES (?, ?, ?, ?)`,
		s.UserID, s.InputText, s.Summary, s.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("Save: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Save: %w", err)
	}
	s.ID = id
	return id, nil
}

func (r *SummaryRepo) ListForUser(ctx context.Context, userID int64) ([]*entity.SummaryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, input_text, summary, created_at
FROM summaries
WHERE user_id = ?
ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("ListForUser: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.SummaryRecord, 0, 20)
	for rows.Next() {
		var s entity.SummaryRecord
		if err := rows.Scan(&s.ID, &s.UserID, &s.InputText, &s.Summary, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListForUser: %w", err)
		}
		records = append(records, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListForUser: %w", err)
	}
	return records, nil
}
