package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sekolah-cli/internal/api"
)

const orgFile = "organization.json"

// OrgStore remembers which organization the user is working in. Scoped
// commands read the selection instead of requiring an --org flag on
// every call.
type OrgStore struct {
	path     string
	selected *api.Organization
}

// NewOrgStore creates a store persisting under dir.
func NewOrgStore(dir string) *OrgStore {
	return &OrgStore{path: filepath.Join(dir, orgFile)}
}

// Restore loads the persisted selection if one exists. A missing or
// corrupt file leaves no organization selected.
func (s *OrgStore) Restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var org api.Organization
	if err := json.Unmarshal(data, &org); err != nil {
		return
	}
	if org.ID == "" {
		return
	}
	s.selected = &org
}

// Set replaces the selection and persists it.
func (s *OrgStore) Set(org api.Organization) error {
	s.selected = &org
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(org, "", "  ")
	if err != nil {
		return fmt.Errorf("encode organization: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write organization file: %w", err)
	}
	return nil
}

// Clear forgets the selection and removes the persisted file.
func (s *OrgStore) Clear() error {
	s.selected = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove organization file: %w", err)
	}
	return nil
}

// Selected returns the chosen organization, nil when none is selected.
func (s *OrgStore) Selected() *api.Organization { return s.selected }

// SelectedID returns the chosen organization's ID, empty when none.
func (s *OrgStore) SelectedID() string {
	if s.selected == nil {
		return ""
	}
	return s.selected.ID
}
