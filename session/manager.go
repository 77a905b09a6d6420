package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alpaso-live/alpaso-cli/domain"
)

// AuthService is the slice of the resource client the manager needs. Login
// and registration go through here so the manager can persist the returned
// token in one place.
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error)
}

// Manager owns the authentication token. It is the only mutable shared
// state in the client: read by every request, written on login/logout.
type Manager struct {
	store  Store
	log    zerolog.Logger
	token  string
	loaded bool
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// LoadPersisted pulls the token from the device slot into memory. Idempotent,
// and a read failure is never fatal: it just means unauthenticated.
func (m *Manager) LoadPersisted() {
	if m.loaded {
		return
	}
	m.loaded = true
	token, err := m.store.Load()
	if err != nil {
		m.log.Debug().Err(err).Msg("no persisted session, starting unauthenticated")
		return
	}
	m.token = token
}

// Token satisfies the resource client's TokenSource.
func (m *Manager) Token() string {
	m.LoadPersisted()
	return m.token
}

func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Login validates credentials locally, delegates to the auth endpoint and
// persists the returned token.
func (m *Manager) Login(ctx context.Context, auth AuthService, email, password string) (domain.User, error) {
	if err := (domain.LoginInput{Email: email, Password: password}).Validate(); err != nil {
		return domain.User{}, err
	}
	res, err := auth.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	m.hold(res.Token)
	return res.User, nil
}

// Register creates an account. Some backend revisions hand a session token
// straight back; when they do, it is persisted like a login.
func (m *Manager) Register(ctx context.Context, auth AuthService, in domain.RegisterInput) (domain.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.AuthResult{}, err
	}
	res, err := auth.Register(ctx, in)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if res.Token != "" {
		m.hold(res.Token)
	}
	return res, nil
}

// Logout drops the in-memory token and clears the persisted slot. It always
// succeeds locally; no remote invalidation is attempted.
func (m *Manager) Logout() {
	m.token = ""
	m.loaded = true
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

func (m *Manager) hold(token string) {
	m.token = token
	m.loaded = true
	if err := m.store.Save(token); err != nil {
		// The session still works for this process; it just won't survive
		// a restart.
		m.log.Warn().Err(err).Msg("failed to persist session token")
	}
}
