package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/infra/adapter/persistence/sqlite"
)

// ─────────────────────────────────────────────
// ヘルパ：インメモリ DB
// ─────────────────────────────────────────────
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ─────────────────────────────────────────────
// 1. Create / GetByUsername
// ─────────────────────────────────────────────
func TestUserRepo_CreateAndGetByUsername(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewUserRepo(db)

	u := &entity.User{Username: "alice", PasswordHash: "$2a$10$hash", DisplayName: "Alice"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create: ID not assigned")
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("Create: CreatedAt not set")
	}

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if got == nil || got.ID != u.ID || got.PasswordHash != u.PasswordHash {
		t.Fatalf("GetByUsername mismatch: got=%+v", got)
	}
}

// ─────────────────────────────────────────────
// 2. 重複 username
// ─────────────────────────────────────────────
func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewUserRepo(db)

	if err := repo.Create(context.Background(), &entity.User{Username: "bob", PasswordHash: "h"}); err != nil {
		t.Fatalf("first Create err=%v", err)
	}
	err := repo.Create(context.Background(), &entity.User{Username: "bob", PasswordHash: "h2"})
	if !errors.Is(err, entity.ErrDuplicateUsername) {
		t.Fatalf("duplicate Create: err=%v, want ErrDuplicateUsername", err)
	}
}

// ─────────────────────────────────────────────
// 3. 見つからない場合は (nil, nil)
// ─────────────────────────────────────────────
func TestUserRepo_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewUserRepo(db)

	got, err := repo.GetByUsername(context.Background(), "ghost")
	if err != nil || got != nil {
		t.Fatalf("GetByUsername: want (nil, nil), got (%+v, %v)", got, err)
	}
}
