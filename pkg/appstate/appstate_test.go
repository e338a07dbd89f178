package appstate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/billing-api/pkg/draft"
)

func TestNewStartsFresh(t *testing.T) {
	c, err := New(draft.NewMemoryStore())
	require.NoError(t, err)

	s := c.Snapshot()
	assert.Empty(t, s.SelectedCompanyID)
	assert.Equal(t, LangEnglish, s.Language)
	assert.False(t, s.SidebarCollapsed)
}

func TestStatePersistsAcrossContainers(t *testing.T) {
	store := draft.NewMemoryStore()

	c1, err := New(store)
	require.NoError(t, err)
	require.NoError(t, c1.SetSelectedCompany("c-42", json.RawMessage(`{"id":"c-42","name":"Umang Traders"}`)))
	require.NoError(t, c1.SetLanguage(LangHindi))
	_, err = c1.ToggleSidebar()
	require.NoError(t, err)

	// A second container over the same store sees the persisted state.
	c2, err := New(store)
	require.NoError(t, err)

	s := c2.Snapshot()
	assert.Equal(t, "c-42", s.SelectedCompanyID)
	assert.JSONEq(t, `{"id":"c-42","name":"Umang Traders"}`, string(s.SelectedCompany))
	assert.Equal(t, LangHindi, s.Language)
	assert.True(t, s.SidebarCollapsed)
}

func TestCorruptStateIsDiscarded(t *testing.T) {
	store := draft.NewMemoryStore()
	require.NoError(t, store.Save(StorageKey, []byte("{not json")))

	c, err := New(store)
	require.NoError(t, err)
	assert.Equal(t, LangEnglish, c.Snapshot().Language)
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	c, err := New(draft.NewMemoryStore())
	require.NoError(t, err)

	assert.Error(t, c.SetLanguage("fr"))
	assert.Equal(t, LangEnglish, c.Snapshot().Language, "state untouched on rejection")
}

func TestToggleSidebarFlips(t *testing.T) {
	c, err := New(draft.NewMemoryStore())
	require.NoError(t, err)

	collapsed, err := c.ToggleSidebar()
	require.NoError(t, err)
	assert.True(t, collapsed)

	collapsed, err = c.ToggleSidebar()
	require.NoError(t, err)
	assert.False(t, collapsed)
}

func TestWireShape(t *testing.T) {
	store := draft.NewMemoryStore()
	c, err := New(store)
	require.NoError(t, err)
	require.NoError(t, c.SetSelectedCompany("c-1", nil))

	b, err := store.Load(StorageKey)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "c-1", raw["selectedCompanyId"])
	assert.Contains(t, raw, "language")
	assert.Contains(t, raw, "sidebarCollapsed")
}
