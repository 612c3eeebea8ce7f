package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/repository"
)

type SummaryRepo struct{ db *sql.DB }

func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

func (repo *SummaryRepo) Save(ctx context.Context, record *entity.SummaryRecord) (int64, error) {
	const query = `
INSERT INTO summaries (user_id, input_text, summary)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		record.UserID, record.InputText, record.Summary,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("Save: %w", err)
	}
	return record.ID, nil
}

func (repo *SummaryRepo) ListForUser(ctx context.Context, userID int64) ([]*entity.SummaryRecord, error) {
	const query = `
SELECT id, user_id, input_text, summary, created_at
FROM summaries
WHERE user_id = $1
ORDER BY created_at ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListForUser: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*entity.SummaryRecord, 0, 20)
	for rows.Next() {
		record, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("ListForUser: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// scanSummary is a helper function to scan a summary row.
func scanSummary(rows *sql.Rows) (*entity.SummaryRecord, error) {
	var record entity.SummaryRecord
	if err := rows.Scan(
		&record.ID, &record.UserID, &record.InputText, &record.Summary, &record.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}
