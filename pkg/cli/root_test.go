package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns the captured
// stdout. Callers set HOME and SEKOLAH_* env first.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	restore := captureStdout(t)
	root := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	return restore(), err
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sekolah version dev")
}

func TestVersionCommand_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "version", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}

func TestRootCommand_RejectsBadOutputFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "version", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestRootCommand_HostFromEnv(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"ok","data":[{"id":"org1","name":"Yayasan A","code":"YA","is_active":true}]}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, "org", "list")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/organizations", gotPath)
	assert.Contains(t, out, "org1")
	assert.Contains(t, out, "NAME")
}

func TestRootCommand_HostFlagBeatsEnv(t *testing.T) {
	envSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request reached the env host")
	}))
	t.Cleanup(envSrv.Close)
	flagSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(flagSrv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", envSrv.URL)

	_, err := runCommand(t, "org", "list", "--host", flagSrv.URL)
	require.NoError(t, err)
}

func TestRootCommand_HostFromProfile(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles:       map[string]Profile{"default": {Host: srv.URL}},
	}))

	_, err := runCommand(t, "org", "list")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/organizations", gotPath)
}

func TestRootCommand_TokenFromStoredSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEKOLAH_HOST", srv.URL)
	writeSessionFile(t, home, `{"token":"stored-token"}`)

	_, err := runCommand(t, "org", "list")
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestRootCommand_TokenFlagBeatsStoredSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEKOLAH_HOST", srv.URL)
	writeSessionFile(t, home, `{"token":"stored-token"}`)

	_, err := runCommand(t, "org", "list", "--token", "flag-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer flag-token", gotAuth)
}

func writeSessionFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".sekolah")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(content), 0o600))
}
