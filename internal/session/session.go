// Package session keeps the local client state between CLI invocations:
// the signed-in session, the selected organization, and the permission
// set computed from the user's role. Each piece lives in its own JSON
// file under the state directory.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"

	"sekolah-cli/internal/api"
)

const sessionFile = "session.json"

// State is the persisted shape of a signed-in session.
type State struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    int64     `json:"expires_at,omitempty"`
	User         *api.User `json:"user,omitempty"`
}

// Store holds the current session and persists it across invocations.
// A zero-state store is an anonymous session.
type Store struct {
	path  string
	state State
}

// NewStore creates a store persisting under dir. The directory is created
// lazily on the first save.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, sessionFile)}
}

// Restore loads the persisted session if one exists. A missing or
// unreadable file leaves the store anonymous; corruption is never an
// error, it just means signing in again.
func (s *Store) Restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return
	}
	if st.Token == "" {
		return
	}
	s.state = st
}

// Set replaces the session and persists it.
func (s *Store) Set(st State) error {
	s.state = st
	return s.save()
}

// Clear forgets the session and removes the persisted file.
func (s *Store) Clear() error {
	s.state = State{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Token returns the current access token, empty when anonymous.
func (s *Store) Token() string { return s.state.Token }

// RefreshToken returns the stored refresh token, empty when anonymous.
func (s *Store) RefreshToken() string { return s.state.RefreshToken }

// ExpiresAt returns the token expiry as a unix timestamp, zero when unknown.
func (s *Store) ExpiresAt() int64 { return s.state.ExpiresAt }

// IsAuthenticated reports whether a token is present. Expiry is the
// server's call; a stale token simply earns a 401 on the next request.
func (s *Store) IsAuthenticated() bool { return s.state.Token != "" }

// CurrentUser returns the signed-in user, nil when anonymous.
func (s *Store) CurrentUser() *api.User { return s.state.User }

// IsSuperAdmin reports whether the signed-in user is a platform super admin.
func (s *Store) IsSuperAdmin() bool {
	return s.state.User != nil && s.state.User.IsSuperAdmin
}

// Claims decodes the access token's claims without verifying the
// signature. Verification belongs to the server; the client only reads
// claims for display.
func (s *Store) Claims() (jwt.MapClaims, error) {
	if s.state.Token == "" {
		return nil, fmt.Errorf("no session")
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.state.Token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}
