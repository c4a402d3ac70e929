package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meltforce/repflow/internal/auth"
	"github.com/meltforce/repflow/internal/models"
	"github.com/meltforce/repflow/internal/storage"
)

// stubUsers is a single-account UserStore for middleware tests.
type stubUsers struct {
	user *models.User
}

func (s *stubUsers) CreateUser(_ context.Context, email, displayName, passwordHash string) (*models.User, error) {
	if s.user != nil {
		return nil, storage.ErrDuplicate
	}
	s.user = &models.User{ID: 1, Email: email, DisplayName: displayName, PasswordHash: passwordHash}
	return s.user, nil
}

func (s *stubUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, storage.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUsers) GetUser(_ context.Context, id int64) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, storage.ErrNotFound
	}
	return s.user, nil
}

func testAuthService(t *testing.T) (*auth.Service, string) {
	t.Helper()
	svc := auth.NewService(&stubUsers{}, "middleware-test-secret", 4, 24)
	user, err := svc.Register(context.Background(), "alice@example.com", "Alice", "password123", "password123")
	if err != nil {
		t.Fatal(err)
	}
	token, err := svc.Token(user)
	if err != nil {
		t.Fatal(err)
	}
	return svc, token
}

// TestIdentifySetsUserID verifies a valid bearer token resolves to a user id.
func TestIdentifySetsUserID(t *testing.T) {
	svc, token := testAuthService(t)

	var gotUserID int64
	handler := Identify(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = userID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if gotUserID != 1 {
		t.Errorf("userID = %d, want 1", gotUserID)
	}
}

// TestIdentifyAnonymousPassesThrough verifies requests without a token reach
// the handler with user id 0 instead of being rejected.
func TestIdentifyAnonymousPassesThrough(t *testing.T) {
	svc, _ := testAuthService(t)

	called := false
	handler := Identify(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if id := userID(r); id != 0 {
			t.Errorf("userID = %d, want 0", id)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("handler not reached")
	}
}

// TestIdentifyRejectsBadToken verifies a present-but-invalid token is a hard 401.
func TestIdentifyRejectsBadToken(t *testing.T) {
	svc, _ := testAuthService(t)

	handler := Identify(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestIdentifyRejectsMalformedHeader covers a non-bearer Authorization value.
func TestIdentifyRejectsMalformedHeader(t *testing.T) {
	svc, token := testAuthService(t)

	handler := Identify(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with malformed header")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestCORSPreflight verifies OPTIONS requests short-circuit with the headers set.
func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached on preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}
