package session

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolah-cli/internal/api"
)

func TestStore_AnonymousByDefault(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.CurrentUser())
	assert.False(t, s.IsSuperAdmin())
}

func TestStore_SetRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	err := s.Set(State{
		Token:        "tok-1",
		RefreshToken: "ref-1",
		ExpiresAt:    1790000000,
		User:         &api.User{ID: "usr1", Email: "admin@example.com", IsSuperAdmin: true},
	})
	require.NoError(t, err)

	restored := NewStore(dir)
	restored.Restore()

	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "tok-1", restored.Token())
	assert.Equal(t, "ref-1", restored.RefreshToken())
	assert.Equal(t, int64(1790000000), restored.ExpiresAt())
	require.NotNil(t, restored.CurrentUser())
	assert.Equal(t, "admin@example.com", restored.CurrentUser().Email)
	assert.True(t, restored.IsSuperAdmin())
}

func TestStore_SetCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewStore(dir)

	require.NoError(t, s.Set(State{Token: "tok"}))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_RestoreMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())
	s.Restore()
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RestoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	s := NewStore(dir)
	s.Restore()
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RestoreEmptyToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"token":""}`), 0o600))

	s := NewStore(dir)
	s.Restore()
	assert.False(t, s.IsAuthenticated())
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Set(State{Token: "tok"}))

	require.NoError(t, s.Clear())

	assert.False(t, s.IsAuthenticated())
	_, err := os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

// unsignedJWT builds a syntactically valid token with the given claims and
// an empty signature, enough for unverified parsing.
func unsignedJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := map[string]string{"alg": "none", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "."
}

func TestStore_Claims(t *testing.T) {
	s := NewStore(t.TempDir())
	tok := unsignedJWT(t, map[string]any{"sub": "usr1", "exp": 1790000000})
	require.NoError(t, s.Set(State{Token: tok}))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "usr1", claims["sub"])
}

func TestStore_ClaimsAnonymous(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Claims()
	require.EqualError(t, err, "no session")
}

func TestStore_ClaimsMalformedToken(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Set(State{Token: "not-a-jwt"}))

	_, err := s.Claims()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse token")
}
