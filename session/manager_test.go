package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alpaso-live/alpaso-cli/domain"
)

type memStore struct {
	token   string
	loadErr error
}

func (s *memStore) Load() (string, error) {
	return s.token, s.loadErr
}

func (s *memStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *memStore) Clear() error {
	s.token = ""
	return nil
}

type fakeAuth struct {
	result domain.AuthResult
	err    error
	calls  int
}

func (a *fakeAuth) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	a.calls++
	return a.result, a.err
}

func (a *fakeAuth) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error) {
	a.calls++
	return a.result, a.err
}

func newTestManager(store Store) *Manager {
	return NewManager(store, zerolog.Nop())
}

func TestLoginHoldsAndPersistsToken(t *testing.T) {
	store := &memStore{}
	m := newTestManager(store)
	auth := &fakeAuth{result: domain.AuthResult{
		Token: "tok-123",
		User:  domain.User{Name: "Ana", Email: "ana@test.com", Role: domain.RoleBuyer},
	}}

	user, err := m.Login(context.Background(), auth, "ana@test.com", "123456")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if user.Email != "ana@test.com" {
		t.Errorf("user email = %q, want ana@test.com", user.Email)
	}
	if !m.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after successful login")
	}
	if m.Token() != "tok-123" {
		t.Errorf("Token() = %q, want tok-123", m.Token())
	}
	if store.token != "tok-123" {
		t.Errorf("persisted token = %q, want tok-123", store.token)
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	auth := &fakeAuth{}
	m := newTestManager(&memStore{})

	_, err := m.Login(context.Background(), auth, "not-an-email", "123456")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if auth.calls != 0 {
		t.Errorf("auth endpoint was called %d times for invalid input", auth.calls)
	}
}

func TestLoginFailureLeavesUnauthenticated(t *testing.T) {
	m := newTestManager(&memStore{})
	auth := &fakeAuth{err: errors.New("bad credentials")}

	if _, err := m.Login(context.Background(), auth, "ana@test.com", "wrong1"); err == nil {
		t.Fatal("expected error from failed login")
	}
	if m.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed login")
	}
}

func TestLogoutAlwaysClears(t *testing.T) {
	store := &memStore{token: "stale"}
	m := newTestManager(store)
	if !m.IsAuthenticated() {
		t.Fatal("expected authenticated from persisted token")
	}

	m.Logout()
	if m.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
	if store.token != "" {
		t.Errorf("persisted token = %q after logout, want empty", store.token)
	}

	// Logout with no prior session is still fine.
	m2 := newTestManager(&memStore{})
	m2.Logout()
	if m2.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout on fresh manager")
	}
}

func TestLoadPersistedFailureIsNotFatal(t *testing.T) {
	m := newTestManager(&memStore{loadErr: errors.New("disk gone")})
	m.LoadPersisted()
	if m.IsAuthenticated() {
		t.Error("read failure should mean unauthenticated")
	}
	// Idempotent: calling again does not re-read.
	m.LoadPersisted()
}

func TestRegisterPersistsTokenWhenPresent(t *testing.T) {
	store := &memStore{}
	m := newTestManager(store)
	auth := &fakeAuth{result: domain.AuthResult{Token: "reg-tok"}}

	in := domain.RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "123456", Role: domain.RoleBuyer}
	if _, err := m.Register(context.Background(), auth, in); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if store.token != "reg-tok" {
		t.Errorf("persisted token = %q, want reg-tok", store.token)
	}

	// Without a token in the response nothing is persisted.
	store2 := &memStore{}
	m2 := newTestManager(store2)
	auth2 := &fakeAuth{result: domain.AuthResult{Message: "created"}}
	if _, err := m2.Register(context.Background(), auth2, in); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if m2.IsAuthenticated() {
		t.Error("IsAuthenticated() = true without a token")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".alpaso.yaml")
	store := NewFileStore(path)

	if _, err := store.Load(); err == nil {
		t.Log("missing file read did not error; treated as empty")
	}

	if err := store.Save("file-tok"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if token != "file-tok" {
		t.Fatalf("Load() = %q, want file-tok", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	token, err = store.Load()
	if err != nil {
		t.Fatalf("Load() after clear failed: %v", err)
	}
	if token != "" {
		t.Fatalf("Load() after clear = %q, want empty", token)
	}
}
