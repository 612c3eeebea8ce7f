package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/service/auth"
)

// ─────────────────────────────────────────────
// スタブ：インメモリ UserRepository
// ─────────────────────────────────────────────
type stubUserRepo struct {
	users     map[string]*entity.User
	nextID    int64
	err       error
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = s.nextID
	s.nextID++
	s.users[u.Username] = u
	return nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[username], nil
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(repo *stubUserRepo) (*auth.Service, *auth.TokenManager) {
	tm := auth.NewTokenManager(testSecret)
	return auth.NewService(repo, tm), tm
}

// ─────────────────────────────────────────────
// 1. Register
// ─────────────────────────────────────────────
func TestService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc, tm := newTestService(repo)

	token, err := svc.Register(context.Background(), "alice", "correct-horse", "Alice")
	if err != nil {
		t.Fatalf("Register err=%v", err)
	}

	userID, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify err=%v", err)
	}
	if userID != 1 {
		t.Errorf("Verify userID=%d want 1", userID)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "correct-horse" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestService(repo)

	if _, err := svc.Register(context.Background(), "alice", "correct-horse", ""); err != nil {
		t.Fatalf("first Register err=%v", err)
	}
	_, err := svc.Register(context.Background(), "alice", "other-password", "")
	if !errors.Is(err, auth.ErrDuplicateUser) {
		t.Fatalf("Register err=%v, want ErrDuplicateUser", err)
	}
}

// A racing registration can pass the uniqueness check and only fail at
// the INSERT; the constraint violation must still read as a duplicate.
func TestService_Register_DuplicateOnInsert(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = entity.ErrDuplicateUsername
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), "alice", "correct-horse", "")
	if !errors.Is(err, auth.ErrDuplicateUser) {
		t.Fatalf("Register err=%v, want ErrDuplicateUser", err)
	}
}

func TestService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestService(repo)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "correct-horse"},
		{"short password", "alice", "hunter2"},
		{"long password", "alice", strings.Repeat("x", 73)},
		{"bad username chars", "al ice", "correct-horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password, "")
			if err == nil {
				t.Fatal("Register: want validation error, got nil")
			}
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Register err=%v, want *entity.ValidationError", err)
			}
		})
	}
}

// ─────────────────────────────────────────────
// 2. Login
// ─────────────────────────────────────────────
func TestService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc, tm := newTestService(repo)

	if _, err := svc.Register(context.Background(), "alice", "correct-horse", ""); err != nil {
		t.Fatalf("Register err=%v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}
	if _, err := tm.Verify(token); err != nil {
		t.Errorf("Verify err=%v", err)
	}
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestService(repo)

	if _, err := svc.Register(context.Background(), "alice", "correct-horse", ""); err != nil {
		t.Fatalf("Register err=%v", err)
	}

	// Unknown username and wrong password report the same error.
	for _, tt := range []struct{ username, password string }{
		{"ghost", "correct-horse"},
		{"alice", "wrong-password"},
	} {
		_, err := svc.Login(context.Background(), tt.username, tt.password)
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err=%v, want ErrInvalidCredentials", tt.username, tt.password, err)
		}
	}
}

func TestService_Login_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("connection refused")
	svc, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err == nil || errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("Login err=%v, want wrapped repo error", err)
	}
}
