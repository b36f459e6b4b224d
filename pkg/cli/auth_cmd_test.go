package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"ok","data":{
			"access_token":"at-1","refresh_token":"rt-1","expires_at":1790000000,
			"user":{"id":"usr1","email":"admin@example.com","full_name":"Admin User"}}}`))
	}))
	t.Cleanup(srv.Close)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, "auth", "login", "--email", "admin@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.Contains(t, out, "Signed in as Admin User (admin@example.com)")

	data, err := os.ReadFile(filepath.Join(home, ".sekolah", "session.json"))
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "at-1", saved["token"])
	assert.Equal(t, "rt-1", saved["refresh_token"])
}

func TestAuthLogout_ClearsSessionAndOrgSelection(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sekolah")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"token":"tok"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "organization.json"), []byte(`{"id":"org1","name":"Yayasan A"}`), 0o600))

	out, err := runCommand(t, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	_, err = os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "organization.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestAuthStatus_Anonymous(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "authenticated:  false")
}

func TestAuthStatus_SignedIn(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sekolah")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	session := `{"token":"tok","user":{"id":"usr1","email":"admin@example.com","full_name":"Admin User","is_super_admin":true}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(session), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "organization.json"), []byte(`{"id":"org1","name":"Yayasan A"}`), 0o600))

	out, err := runCommand(t, "auth", "status", "--output", "json")
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Equal(t, true, fields["authenticated"])
	assert.Equal(t, "admin@example.com", fields["email"])
	assert.Equal(t, true, fields["super_admin"])
	assert.Equal(t, "Yayasan A", fields["organization"])
}

func TestAuthCapabilities_NotSignedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "auth", "capabilities")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestAuthCapabilities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/me/memberships":
			_, _ = w.Write([]byte(`{"message":"ok","data":{
				"user_id":"usr1","is_super_admin":false,
				"organization_memberships":[{"org_id":"org1","role_id":"role1"}]}}`))
		case "/api/v1/roles/role1":
			_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"role1","name":"admin","permissions":[
				{"id":"p1","resource":"perumahans","action":"read"},
				{"id":"p2","resource":"members","action":"create"}]}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEKOLAH_HOST", srv.URL)
	writeSessionFile(t, home, `{"token":"tok"}`)

	out, err := runCommand(t, "auth", "capabilities")
	require.NoError(t, err)
	assert.Contains(t, out, "RESOURCE")
	assert.Contains(t, out, "perumahans")
	assert.Contains(t, out, "members")
	assert.NotContains(t, out, "Super admin")
}
