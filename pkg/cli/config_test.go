package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfig_SaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &UserConfig{
		CurrentProfile: "staging",
		Profiles: map[string]Profile{
			"staging": {Host: "https://staging.example.com", Token: "tok", Output: "json"},
			"prod":    {Host: "https://api.example.com"},
		},
	}
	require.NoError(t, SaveUserConfig(cfg))

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", loaded.CurrentProfile)
	assert.Equal(t, cfg.Profiles, loaded.Profiles)
}

func TestLoadUserConfig_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUserConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestStateDirAndConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".sekolah"), StateDir())
	assert.Equal(t, filepath.Join(home, ".sekolah", "config.yaml"), ConfigPath())
}

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Host: "http://localhost:8080"},
			"prod":    {Host: "https://api.example.com"},
		},
	}

	assert.Equal(t, "http://localhost:8080", cfg.ActiveProfile("").Host)
	assert.Equal(t, "https://api.example.com", cfg.ActiveProfile("prod").Host)
	// Unknown names fall back to an empty profile.
	assert.Equal(t, Profile{}, cfg.ActiveProfile("nope"))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "****", maskSecret("exactly10c"))
	assert.Equal(t, "eyJh****sig1", maskSecret("eyJhbGciOiJIUzI1NiJ9.sig1"))
}
