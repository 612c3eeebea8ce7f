package db_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/2003aryan/crisp-ai/internal/infra/db"
)

func TestMigrateUp(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = conn.Close() }()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS summaries`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_summaries_user_created`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := db.MigrateUp(conn); err != nil {
		t.Fatalf("MigrateUp err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMigrateDown(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = conn.Close() }()

	mock.ExpectExec(`DROP INDEX IF EXISTS idx_summaries_user_created`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE IF EXISTS summaries`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE IF EXISTS users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := db.MigrateDown(conn); err != nil {
		t.Fatalf("MigrateDown err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
