package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
)

// SummarySheetGID is the legacy team-summary tab. It is never fetched as a
// customer account and is stripped from every sheet list on load and update.
const SummarySheetGID = "1181732765"

// DefaultSpreadsheetID is the built-in workbook identifier.
const DefaultSpreadsheetID = "1RLhYYa6thMh_60atGO4bmbXI7j21vWesThZv26ytpfc"

// DefaultCustomerSheets is the built-in customer tab set. Loaded
// configurations are unioned with this list so new built-in tabs appear even
// when a persisted blob predates them.
var DefaultCustomerSheets = []string{
	"2005537397", "959399423", "1624411791", "1936773787", "1427779494",
	"1410453576", "197258654", "1934334655", "1595143066", "998019819",
	"1033472446", "1902415477", "892981804", "2006466663", "1903774197",
	"1258748022", "1981091087", "373305596",
}

// DefaultPasswords is the built-in access password list.
var DefaultPasswords = []string{"123123123"}

var (
	// ErrDenylistedSheet is returned when an update tries to register the
	// summary tab as a customer sheet.
	ErrDenylistedSheet = errors.New("sheet identifier is reserved for the team summary")

	// ErrNoPasswords is returned when an update would remove the last
	// access password.
	ErrNoPasswords = errors.New("at least one access password is required")
)

// Dashboard is the mutable dashboard configuration entity.
type Dashboard struct {
	SpreadsheetID  string   `json:"spreadsheet_id" validate:"required"`
	CustomerSheets []string `json:"customer_sheets" validate:"required,min=1,dive,required"`
	Passwords      []string `json:"passwords" validate:"required,min=1,dive,required"`
}

// DefaultDashboard returns the built-in dashboard configuration.
func DefaultDashboard() Dashboard {
	return Dashboard{
		SpreadsheetID:  DefaultSpreadsheetID,
		CustomerSheets: append([]string(nil), DefaultCustomerSheets...),
		Passwords:      append([]string(nil), DefaultPasswords...),
	}
}

// Store owns the persisted Dashboard and serializes access to it.
type Store struct {
	path     string
	logger   *slog.Logger
	validate *validator.Validate

	mu      sync.RWMutex
	current Dashboard
}

// NewStore loads the dashboard configuration from path, falling back to the
// built-in defaults when the file is missing or unreadable. The loaded sheet
// list is unioned with the defaults and the summary tab is filtered out.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:     path,
		logger:   logger,
		validate: validator.New(),
	}
	s.current = s.load()
	return s
}

func (s *Store) load() Dashboard {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read dashboard config, using defaults",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return sanitize(DefaultDashboard())
	}

	var d Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		s.logger.Warn("failed to parse dashboard config, using defaults",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return sanitize(DefaultDashboard())
	}

	if d.SpreadsheetID == "" {
		d.SpreadsheetID = DefaultSpreadsheetID
	}
	d.CustomerSheets = unionSheets(DefaultCustomerSheets, d.CustomerSheets)
	if len(d.Passwords) == 0 {
		d.Passwords = append([]string(nil), DefaultPasswords...)
	}
	return sanitize(d)
}

// sanitize strips the denylisted summary tab from the sheet list.
func sanitize(d Dashboard) Dashboard {
	filtered := d.CustomerSheets[:0:0]
	for _, id := range d.CustomerSheets {
		if id == SummarySheetGID {
			continue
		}
		filtered = append(filtered, id)
	}
	d.CustomerSheets = filtered
	return d
}

// unionSheets merges defaults and stored identifiers, defaults first,
// preserving order and dropping duplicates.
func unionSheets(defaults, stored []string) []string {
	seen := make(map[string]bool, len(defaults)+len(stored))
	out := make([]string, 0, len(defaults)+len(stored))
	for _, list := range [][]string{defaults, stored} {
		for _, id := range list {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Current returns a copy of the configuration.
func (s *Store) Current() Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDashboard(s.current)
}

// SpreadsheetID returns the configured workbook identifier.
func (s *Store) SpreadsheetID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.SpreadsheetID
}

// CustomerSheets returns the customer tab identifiers, with the summary tab
// always excluded.
func (s *Store) CustomerSheets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.current.CustomerSheets))
	for _, id := range s.current.CustomerSheets {
		if id == SummarySheetGID {
			continue
		}
		out = append(out, id)
	}
	return out
}

// HasSheet reports whether id is a configured customer sheet.
func (s *Store) HasSheet(id string) bool {
	if id == SummarySheetGID {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sheet := range s.current.CustomerSheets {
		if sheet == id {
			return true
		}
	}
	return false
}

// CheckPassword reports whether password matches any configured password.
// Comparison is plain text by contract.
func (s *Store) CheckPassword(password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.current.Passwords {
		if p == password {
			return true
		}
	}
	return false
}

// Update validates and persists a new configuration. Registering the summary
// tab or emptying the password list is rejected before anything is written.
func (s *Store) Update(d Dashboard) error {
	if err := s.validate.Struct(d); err != nil {
		if len(d.Passwords) == 0 {
			return ErrNoPasswords
		}
		return fmt.Errorf("invalid dashboard config: %w", err)
	}
	for _, id := range d.CustomerSheets {
		if id == SummarySheetGID {
			return fmt.Errorf("%w: %s", ErrDenylistedSheet, id)
		}
	}

	d = sanitize(d)
	d.CustomerSheets = unionSheets(nil, d.CustomerSheets)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(d); err != nil {
		return err
	}
	s.current = d
	s.logger.Info("dashboard config updated",
		slog.Int("customer_sheets", len(d.CustomerSheets)),
		slog.Int("passwords", len(d.Passwords)))
	return nil
}

// persist writes the blob atomically via a temp file rename.
func (s *Store) persist(d Dashboard) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dashboard config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "dashboard-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close config file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

func copyDashboard(d Dashboard) Dashboard {
	return Dashboard{
		SpreadsheetID:  d.SpreadsheetID,
		CustomerSheets: append([]string(nil), d.CustomerSheets...),
		Passwords:      append([]string(nil), d.Passwords...),
	}
}
