// Package appstate holds the client's persisted UI state: the selected
// company, display language and sidebar preference. State lives in an
// explicit container injected into the view layer; persistence crosses a
// single serialize/deserialize boundary instead of ambient storage access.
package appstate

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gstbill/billing-api/pkg/draft"
)

// StorageKey is the single persisted key.
const StorageKey = "billing-system-storage"

// Language codes supported by the UI.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// State is the serialized shape.
type State struct {
	SelectedCompanyID string          `json:"selectedCompanyId"`
	SelectedCompany   json.RawMessage `json:"selectedCompany,omitempty"`
	Language          string          `json:"language"`
	SidebarCollapsed  bool            `json:"sidebarCollapsed"`
}

// Container owns the mutable state and its persistence.
type Container struct {
	mu    sync.RWMutex
	state State
	store draft.Store
}

// New builds a container backed by the given store, restoring any persisted
// state. A missing key starts fresh with English defaults.
func New(store draft.Store) (*Container, error) {
	c := &Container{
		state: State{Language: LangEnglish},
		store: store,
	}
	b, err := store.Load(StorageKey)
	if err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return c, nil
		}
		return nil, err
	}
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		// Corrupt persisted state is discarded, not fatal.
		return c, nil
	}
	if s.Language == "" {
		s.Language = LangEnglish
	}
	c.state = s
	return c, nil
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SetSelectedCompany records the active company and its cached wire form.
func (c *Container) SetSelectedCompany(id string, company json.RawMessage) error {
	c.mu.Lock()
	c.state.SelectedCompanyID = id
	c.state.SelectedCompany = company
	c.mu.Unlock()
	return c.persist()
}

// SetLanguage switches the display language.
func (c *Container) SetLanguage(lang string) error {
	if lang != LangEnglish && lang != LangHindi {
		return errors.New("appstate: unsupported language " + lang)
	}
	c.mu.Lock()
	c.state.Language = lang
	c.mu.Unlock()
	return c.persist()
}

// ToggleSidebar flips the sidebar preference and returns the new value.
func (c *Container) ToggleSidebar() (bool, error) {
	c.mu.Lock()
	c.state.SidebarCollapsed = !c.state.SidebarCollapsed
	collapsed := c.state.SidebarCollapsed
	c.mu.Unlock()
	return collapsed, c.persist()
}

// persist crosses the serialize boundary.
func (c *Container) persist() error {
	c.mu.RLock()
	b, err := json.Marshal(c.state)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return c.store.Save(StorageKey, b)
}
