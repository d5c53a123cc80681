package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/internal/config"
)

type stubConfigAdmin struct {
	current   config.Dashboard
	updateErr error
	updated   *config.Dashboard
}

func (s *stubConfigAdmin) Current() config.Dashboard {
	return s.current
}

func (s *stubConfigAdmin) Update(d config.Dashboard) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = &d
	return nil
}

func TestGetConfigElidesPasswords(t *testing.T) {
	h := NewAdminHandler(&stubConfigAdmin{current: config.Dashboard{
		SpreadsheetID:  "book-1",
		CustomerSheets: []string{"s1", "s2"},
		Passwords:      []string{"secret-1", "secret-2"},
	}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-1")
	assert.Contains(t, rec.Body.String(), `"password_count":2`)
}

func TestUpdateConfig(t *testing.T) {
	stub := &stubConfigAdmin{current: config.Dashboard{Passwords: []string{"old"}}}
	h := NewAdminHandler(stub, nil)

	body := `{"spreadsheet_id":"book-2","customer_sheets":["s1"],"passwords":["new"]}`
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updated)
	assert.Equal(t, "book-2", stub.updated.SpreadsheetID)
	assert.Equal(t, []string{"new"}, stub.updated.Passwords)
}

func TestUpdateConfigKeepsPasswordsWhenOmitted(t *testing.T) {
	stub := &stubConfigAdmin{current: config.Dashboard{Passwords: []string{"old"}}}
	h := NewAdminHandler(stub, nil)

	body := `{"spreadsheet_id":"book-2","customer_sheets":["s1"]}`
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updated)
	assert.Equal(t, []string{"old"}, stub.updated.Passwords)
}

func TestUpdateConfigRejectsDenylistedSheet(t *testing.T) {
	h := NewAdminHandler(&stubConfigAdmin{updateErr: config.ErrDenylistedSheet}, nil)

	body := `{"spreadsheet_id":"book-1","customer_sheets":["` + config.SummarySheetGID + `"],"passwords":["pw"]}`
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateConfigRejectsEmptyPasswords(t *testing.T) {
	h := NewAdminHandler(&stubConfigAdmin{
		current:   config.Dashboard{},
		updateErr: config.ErrNoPasswords,
	}, nil)

	body := `{"spreadsheet_id":"book-1","customer_sheets":["s1"]}`
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
