package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "dashboard.json")
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore(storePath(t), nil)

	assert.Equal(t, DefaultSpreadsheetID, s.SpreadsheetID())
	assert.Equal(t, DefaultCustomerSheets, s.CustomerSheets())
	assert.True(t, s.CheckPassword("123123123"))
	assert.False(t, s.CheckPassword("wrong"))
}

func TestNewStoreFiltersSummarySheet(t *testing.T) {
	path := storePath(t)
	stored := Dashboard{
		SpreadsheetID:  "custom-id",
		CustomerSheets: []string{SummarySheetGID, "111", "222"},
		Passwords:      []string{"pw"},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	s := NewStore(path, nil)

	sheets := s.CustomerSheets()
	assert.NotContains(t, sheets, SummarySheetGID)
	assert.Contains(t, sheets, "111")
	assert.Contains(t, sheets, "222")
}

func TestNewStoreUnionsDefaults(t *testing.T) {
	path := storePath(t)
	// A blob that predates most of the built-in tab list.
	stored := Dashboard{
		SpreadsheetID:  "custom-id",
		CustomerSheets: []string{"999999", DefaultCustomerSheets[0]},
		Passwords:      []string{"pw"},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	s := NewStore(path, nil)

	sheets := s.CustomerSheets()
	for _, id := range DefaultCustomerSheets {
		assert.Contains(t, sheets, id)
	}
	assert.Contains(t, sheets, "999999")
	// Defaults come first and duplicates collapse.
	assert.Equal(t, DefaultCustomerSheets[0], sheets[0])
	assert.Len(t, sheets, len(DefaultCustomerSheets)+1)
}

func TestNewStoreCorruptFile(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewStore(path, nil)

	assert.Equal(t, DefaultSpreadsheetID, s.SpreadsheetID())
	assert.Equal(t, DefaultCustomerSheets, s.CustomerSheets())
}

func TestStoreUpdatePersists(t *testing.T) {
	path := storePath(t)
	s := NewStore(path, nil)

	next := Dashboard{
		SpreadsheetID:  "new-id",
		CustomerSheets: []string{"111", "222"},
		Passwords:      []string{"secret"},
	}
	require.NoError(t, s.Update(next))

	assert.Equal(t, "new-id", s.SpreadsheetID())
	assert.True(t, s.CheckPassword("secret"))
	assert.False(t, s.CheckPassword("123123123"))

	// A fresh store re-reads the blob; defaults are unioned back in.
	reloaded := NewStore(path, nil)
	assert.Equal(t, "new-id", reloaded.SpreadsheetID())
	assert.Contains(t, reloaded.CustomerSheets(), "111")
}

func TestStoreUpdateRejectsSummarySheet(t *testing.T) {
	s := NewStore(storePath(t), nil)
	before := s.CustomerSheets()

	err := s.Update(Dashboard{
		SpreadsheetID:  "id",
		CustomerSheets: []string{"111", SummarySheetGID},
		Passwords:      []string{"pw"},
	})

	require.ErrorIs(t, err, ErrDenylistedSheet)
	assert.Equal(t, before, s.CustomerSheets(), "rejected update must not change state")
}

func TestStoreUpdateRejectsEmptyPasswords(t *testing.T) {
	s := NewStore(storePath(t), nil)

	err := s.Update(Dashboard{
		SpreadsheetID:  "id",
		CustomerSheets: []string{"111"},
		Passwords:      nil,
	})

	require.ErrorIs(t, err, ErrNoPasswords)
	assert.True(t, s.CheckPassword("123123123"), "previous passwords survive a rejected update")
}

func TestStoreHasSheet(t *testing.T) {
	s := NewStore(storePath(t), nil)

	assert.True(t, s.HasSheet(DefaultCustomerSheets[0]))
	assert.False(t, s.HasSheet("does-not-exist"))
	assert.False(t, s.HasSheet(SummarySheetGID), "summary tab is never a customer sheet")
}
