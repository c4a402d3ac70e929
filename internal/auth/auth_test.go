package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/storage"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// memUsers is an in-memory UserStore.
type memUsers struct {
	nextID  int64
	byEmail map[string]*models.User
	byID    map[int64]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{
		nextID:  1,
		byEmail: make(map[string]*models.User),
		byID:    make(map[int64]*models.User),
	}
}

func (m *memUsers) CreateUser(_ context.Context, email, displayName, passwordHash string) (*models.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, storage.ErrDuplicate
	}
	u := &models.User{ID: m.nextID, Email: email, DisplayName: displayName, PasswordHash: passwordHash}
	m.nextID++
	m.byEmail[email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetUser(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func newTestService() *Service {
	// Cost 4 keeps bcrypt fast in tests.
	return NewService(newMemUsers(), testJWTSecret, 4, 24)
}

func TestRegisterSuccess(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	user, err := s.Register(ctx, "new@example.com", "New User", "password123", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("email = %q, want new@example.com", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in clear")
	}
}

func TestRegisterValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	tests := []struct {
		name                     string
		email, password, confirm string
	}{
		{"empty email", "", "password123", "password123"},
		{"empty password", "a@example.com", "", ""},
		{"mismatched confirmation", "a@example.com", "password123", "password124"},
		{"short password", "a@example.com", "short", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.email, "User", tt.password, tt.confirm)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "dup@example.com", "User 1", "password123", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register(ctx, "dup@example.com", "User 2", "password456", "password456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginAndValidate(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	user, err := s.Register(ctx, "yogi@example.com", "Yogi", "password123", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, token, err := s.Login(ctx, "yogi@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID || got.Email != user.Email {
		t.Fatalf("Login returned user %+v, want %+v", got, user)
	}

	userID, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("userID = %d, want %d", userID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "yogi@example.com", "Yogi", "password123", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := s.Login(ctx, "yogi@example.com", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	s := newTestService()
	if _, _, err := s.Login(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := newTestService()
	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	users := newMemUsers()
	issuer := NewService(users, "secret-a", 4, 24)
	verifier := NewService(users, "secret-b", 4, 24)

	user, err := issuer.Register(context.Background(), "yogi@example.com", "Yogi", "password123", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := issuer.Token(user)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
