package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"parking-bot/internal/api"
	"parking-bot/internal/models"
	"parking-bot/internal/storage"
)

func newTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func token(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestInitEmptyStore(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store, zap.NewNop())
	client := api.NewClient("http://unreachable.invalid", manager, zap.NewNop())

	if err := manager.Init(context.Background(), client); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if manager.LoggedIn() {
		t.Error("LoggedIn() = true after empty-store Init, want false")
	}
}

func TestInitExpiredTokenStaysLoggedOut(t *testing.T) {
	store := newTestStore(t)
	sess := storage.Session{
		Token: token(t, time.Now().Add(-time.Hour)),
		User:  models.User{ID: "u1", Role: models.RoleCustomer},
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	manager := NewManager(store, zap.NewNop())
	client := api.NewClient("http://unreachable.invalid", manager, zap.NewNop())

	// No network call is needed to reject an expired token.
	if err := manager.Init(context.Background(), client); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if manager.LoggedIn() {
		t.Error("LoggedIn() = true with expired token, want false")
	}
}

func TestInitRefreshesProfile(t *testing.T) {
	store := newTestStore(t)
	sess := storage.Session{
		Token: token(t, time.Now().Add(time.Hour)),
		User:  models.User{ID: "u1", Name: "Old Name", Role: models.RoleCustomer},
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user": models.User{ID: "u1", Name: "New Name", Role: models.RoleCustomer},
		})
	}))
	defer server.Close()

	manager := NewManager(store, zap.NewNop())
	client := api.NewClient(server.URL, manager, zap.NewNop())

	if err := manager.Init(context.Background(), client); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	user := manager.Current()
	if user == nil {
		t.Fatal("Current() = nil, want refreshed user")
	}
	if user.Name != "New Name" {
		t.Errorf("Name = %q, want %q", user.Name, "New Name")
	}
}

func TestRejectedTokenClearsSession(t *testing.T) {
	store := newTestStore(t)
	sess := storage.Session{
		Token: token(t, time.Now().Add(time.Hour)),
		User:  models.User{ID: "u1", Role: models.RoleCustomer},
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	manager := NewManager(store, zap.NewNop())
	client := api.NewClient(server.URL, manager, zap.NewNop())

	if err := manager.Init(context.Background(), client); err == nil {
		t.Fatal("Init() error = nil, want unauthorized error")
	}
	if manager.LoggedIn() {
		t.Error("LoggedIn() = true after rejection, want false")
	}

	stored, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stored != nil {
		t.Errorf("stored session = %+v, want cleared", stored)
	}
}

func TestLoginPersistsSession(t *testing.T) {
	store := newTestStore(t)
	tok := token(t, time.Now().Add(time.Hour))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": tok,
			"user":  models.User{ID: "u1", Name: "Alice", Role: models.RoleAdmin},
		})
	}))
	defer server.Close()

	manager := NewManager(store, zap.NewNop())
	client := api.NewClient(server.URL, manager, zap.NewNop())

	user, err := manager.Login(context.Background(), client, "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("Name = %q, want %q", user.Name, "Alice")
	}
	if !manager.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
	if got := manager.Token(); got != tok {
		t.Errorf("Token() = %q, want the issued token", got)
	}

	stored, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stored == nil || stored.Token != tok {
		t.Errorf("stored session = %+v, want persisted token", stored)
	}
}

func TestHandleAuthError(t *testing.T) {
	store := newTestStore(t)
	manager := NewManager(store, zap.NewNop())

	if manager.HandleAuthError(context.Background(), errors.New("network down")) {
		t.Error("HandleAuthError(plain error) = true, want false")
	}
	if !manager.HandleAuthError(context.Background(), &api.Error{Status: http.StatusUnauthorized}) {
		t.Error("HandleAuthError(401) = false, want true")
	}
}
