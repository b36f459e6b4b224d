package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolah-cli/internal/api"
)

func TestOrgStore_NoSelectionByDefault(t *testing.T) {
	s := NewOrgStore(t.TempDir())
	assert.Nil(t, s.Selected())
	assert.Empty(t, s.SelectedID())
}

func TestOrgStore_SetRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewOrgStore(dir)

	require.NoError(t, s.Set(api.Organization{ID: "org1", Name: "Yayasan Cendekia"}))

	restored := NewOrgStore(dir)
	restored.Restore()

	require.NotNil(t, restored.Selected())
	assert.Equal(t, "org1", restored.SelectedID())
	assert.Equal(t, "Yayasan Cendekia", restored.Selected().Name)
}

func TestOrgStore_RestoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "organization.json"), []byte("???"), 0o600))

	s := NewOrgStore(dir)
	s.Restore()
	assert.Nil(t, s.Selected())
}

func TestOrgStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s := NewOrgStore(dir)
	require.NoError(t, s.Set(api.Organization{ID: "org1"}))

	require.NoError(t, s.Clear())

	assert.Nil(t, s.Selected())
	_, err := os.Stat(filepath.Join(dir, "organization.json"))
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, s.Clear())
}
