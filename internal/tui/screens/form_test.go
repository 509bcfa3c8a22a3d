package screens

import (
	"errors"
	"testing"
	"time"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedForm(now time.Time) FormModel {
	m := NewFormModel()
	m.now = func() time.Time { return now }
	m.SetSize(100, 40)
	m.SetProperty(1)
	return m
}

func fillValid(m *FormModel) {
	m.SetValue("name", "Jane Doe")
	m.SetValue("email", "jane@example.com")
	m.SetValue("phone", "+31 6 1234 5678")
	m.SetValue("preferred_date", "2026-11-02")
	m.SetValue("preferred_time", "14:30")
}

func TestFormEscHides(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.HideFormMsg{}, cmd())
}

func TestFormFocusCycles(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.fields)-1, m.focused, "shift+tab wraps to the last field")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focused)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.focused, "enter on a middle field moves on")
}

func TestFormSubmitInvalid(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	m.SetValue("name", "J")
	m.SetValue("email", "not-an-email")
	m.SetValue("preferred_date", "2026-10-01")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	errs := m.Errors()
	assert.Equal(t, "Name must be at least 2 characters", errs["name"])
	assert.Equal(t, "Please enter a valid email", errs["email"])
	assert.Equal(t, "Phone is required", errs["phone"])
	assert.Equal(t, "Please select a future date", errs["preferred_date"])
	assert.Contains(t, m.View(), "Please enter a valid email")
}

func TestFormSubmitValid(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	fillValid(&m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Empty(t, m.Errors())

	req := m.Request()
	assert.Equal(t, int64(1), req.PropertyID)
	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "2026-11-02", req.PreferredDate)
}

func TestFormSubmitDebounced(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	m := fixedForm(now)
	fillValid(&m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	// Server rejected it; a retry inside the window is dropped
	m, _ = m.Update(messages.ViewingSubmittedMsg{Err: errors.New("boom")})
	m.now = func() time.Time { return now.Add(500 * time.Millisecond) }
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	m.now = func() time.Time { return now.Add(SubmitDebounce) }
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.NotNil(t, cmd)
}

func TestFormServerFieldErrors(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	fillValid(&m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	m, _ = m.Update(messages.ViewingSubmittedMsg{Err: models.FieldErrors{"email": "Email already used"}})
	assert.False(t, m.submitting)
	assert.Equal(t, "Email already used", m.Errors()["email"])
}

func TestFormSuccessAndSubmitAnother(t *testing.T) {
	m := fixedForm(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	fillValid(&m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	req := m.Request()
	req.ID = 7
	req.Status = models.StatusPending
	m, _ = m.Update(messages.ViewingSubmittedMsg{Request: req})

	require.NotNil(t, m.Submitted())
	view := m.View()
	assert.Contains(t, view, "Request sent!")
	assert.Contains(t, view, "Monday 2 November")
	assert.Contains(t, view, "14:30")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.Submitted())
	assert.Empty(t, m.Value("name"))
	assert.Equal(t, 0, m.focused)
}
