package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"parking-bot/internal/api"
	"parking-bot/internal/models"
	"parking-bot/internal/storage"
)

// Manager owns the authentication state: the persisted bearer token and the
// cached profile. All other components read it; only Init, Login, Refresh and
// Logout mutate it.
type Manager struct {
	store storage.SessionStore
	log   *zap.Logger

	mu      sync.Mutex
	current *storage.Session
}

func NewManager(store storage.SessionStore, log *zap.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Token implements api.TokenSource. An expired token counts as absent so a
// stale session degrades to logged-out instead of a guaranteed 401.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	if api.TokenExpired(m.current.Token, time.Now()) {
		return ""
	}
	return m.current.Token
}

// Init loads the persisted session and refreshes the profile against the
// server. A rejected or expired token clears the session.
func (m *Manager) Init(ctx context.Context, client *api.Client) error {
	sess, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if sess == nil || api.TokenExpired(sess.Token, time.Now()) {
		m.setCurrent(nil)
		return nil
	}
	m.setCurrent(sess)
	return m.Refresh(ctx, client)
}

// Refresh re-fetches the profile. On an authentication failure the local
// state is cleared, forcing re-login.
func (m *Manager) Refresh(ctx context.Context, client *api.Client) error {
	user, err := client.CurrentUser(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			m.log.Warn("session rejected by server, clearing")
			m.clear(ctx)
		}
		return err
	}

	m.mu.Lock()
	if m.current != nil {
		m.current.User = user
		_ = m.store.Save(ctx, *m.current)
	}
	m.mu.Unlock()
	return nil
}

// Login exchanges credentials for a session and persists it.
func (m *Manager) Login(ctx context.Context, client *api.Client, email, password string) (models.User, error) {
	token, user, err := client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	sess := &storage.Session{Token: token, User: user}
	if err := m.store.Save(ctx, *sess); err != nil {
		return models.User{}, err
	}
	m.setCurrent(sess)
	m.log.Info("logged in", zap.String("user", user.Email), zap.String("role", string(user.Role)))
	return user, nil
}

// Logout clears the session; absence of a token is the logged-out state.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
	m.log.Info("logged out")
}

// HandleAuthError clears the session when err is a 401 and reports whether
// it did so.
func (m *Manager) HandleAuthError(ctx context.Context, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	m.clear(ctx)
	return true
}

// Current returns the cached profile, or nil when logged out.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	user := m.current.User
	return &user
}

func (m *Manager) LoggedIn() bool {
	return m.Current() != nil
}

func (m *Manager) IsAdmin() bool {
	user := m.Current()
	return user != nil && user.Role == models.RoleAdmin
}

func (m *Manager) setCurrent(sess *storage.Session) {
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
}

func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn("failed to clear stored session", zap.Error(err))
	}
}
