package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/infra/adapter/persistence/sqlite"
)

func seedUser(t *testing.T, repo *sqlite.UserRepo, username string) int64 {
	t.Helper()
	u := &entity.User{Username: username, PasswordHash: "h"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seedUser err=%v", err)
	}
	return u.ID
}

// ─────────────────────────────────────────────
// 1. Save
// ─────────────────────────────────────────────
func TestSummaryRepo_Save(t *testing.T) {
	db := openTestDB(t)
	userID := seedUser(t, sqlite.NewUserRepo(db), "alice")
	repo := sqlite.NewSummaryRepo(db)

	s := &entity.SummaryRecord{UserID: userID, InputText: "long text", Summary: "short"}
	id, err := repo.Save(context.Background(), s)
	if err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if id == 0 || s.ID != id {
		t.Fatalf("Save: id=%d s.ID=%d", id, s.ID)
	}
	if s.CreatedAt.IsZero() {
		t.Fatalf("Save: CreatedAt not set")
	}
}

// ─────────────────────────────────────────────
// 2. ListForUser は created_at 昇順
// ─────────────────────────────────────────────
func TestSummaryRepo_ListForUser_Order(t *testing.T) {
	db := openTestDB(t)
	userID := seedUser(t, sqlite.NewUserRepo(db), "alice")
	repo := sqlite.NewSummaryRepo(db)

	for _, in := range []string{"first", "second", "third"} {
		if _, err := repo.Save(context.Background(), &entity.SummaryRecord{
			UserID: userID, InputText: in, Summary: "s-" + in,
		}); err != nil {
			t.Fatalf("Save err=%v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	got, err := repo.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListForUser err=%v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListForUser len=%d want 3", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].InputText != want {
			t.Errorf("ListForUser[%d].InputText=%q want %q", i, got[i].InputText, want)
		}
	}
}

// ─────────────────────────────────────────────
// 3. 他ユーザの行は返さない
// ─────────────────────────────────────────────
func TestSummaryRepo_ListForUser_Scoped(t *testing.T) {
	db := openTestDB(t)
	users := sqlite.NewUserRepo(db)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")
	repo := sqlite.NewSummaryRepo(db)

	if _, err := repo.Save(context.Background(), &entity.SummaryRecord{UserID: alice, InputText: "a", Summary: "sa"}); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if _, err := repo.Save(context.Background(), &entity.SummaryRecord{UserID: bob, InputText: "b", Summary: "sb"}); err != nil {
		t.Fatalf("Save err=%v", err)
	}

	got, err := repo.ListForUser(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListForUser err=%v", err)
	}
	if len(got) != 1 || got[0].UserID != alice {
		t.Fatalf("ListForUser leaked rows: %+v", got)
	}
}

// ─────────────────────────────────────────────
// 4. 空リスト
// ─────────────────────────────────────────────
func TestSummaryRepo_ListForUser_Empty(t *testing.T) {
	db := openTestDB(t)
	userID := seedUser(t, sqlite.NewUserRepo(db), "alice")
	repo := sqlite.NewSummaryRepo(db)

	got, err := repo.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListForUser err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("ListForUser: want empty non-nil slice, got %#v", got)
	}
}
