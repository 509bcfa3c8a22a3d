package screens

import (
	"errors"
	"strings"
	"time"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/tui/messages"
	"github.com/angristan/homeshowcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// SubmitDebounce is the minimum gap between two submissions
const SubmitDebounce = time.Second

type formField struct {
	key   string
	label string
	input textinput.Model
}

// FormModel is the viewing request modal
type FormModel struct {
	propertyID int64
	fields     []formField
	focused    int
	errors     models.FieldErrors

	submitting bool
	lastSubmit time.Time
	submitErr  error
	submitted  *models.ViewingRequest
	spinner    spinner.Model

	now func() time.Time

	// Window size
	width  int
	height int
}

// NewFormModel creates the viewing request form
func NewFormModel() FormModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	m := FormModel{
		spinner: sp,
		now:     time.Now,
	}
	m.fields = []formField{
		newField("name", "Full name", "Jane Doe", 100),
		newField("email", "Email", "jane@example.com", 254),
		newField("phone", "Phone", "+31 6 1234 5678", 20),
		newField("preferred_date", "Preferred date", "YYYY-MM-DD", 10),
		newField("preferred_time", "Preferred time (optional)", "HH:MM", 5),
		newField("message", "Message (optional)", "Anything we should know?", 500),
	}
	m.fields[0].input.Focus()
	return m
}

func newField(key, label, placeholder string, limit int) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return formField{key: key, label: label, input: ti}
}

// SetSize sets the terminal size
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.fields {
		m.fields[i].input.Width = min(max(width*60/100-8, 20), 50)
	}
}

// SetProperty sets which listing requests are sent for
func (m *FormModel) SetProperty(id int64) {
	m.propertyID = id
}

// Reset clears the form for a new request
func (m *FormModel) Reset() {
	for i := range m.fields {
		m.fields[i].input.SetValue("")
		m.fields[i].input.Blur()
	}
	m.focused = 0
	m.fields[0].input.Focus()
	m.errors = nil
	m.submitErr = nil
	m.submitted = nil
	m.submitting = false
}

// Submitted returns the stored request after a successful submission
func (m FormModel) Submitted() *models.ViewingRequest {
	return m.submitted
}

// Errors returns the current field errors
func (m FormModel) Errors() models.FieldErrors {
	return m.errors
}

// Value returns the current value of field key
func (m FormModel) Value(key string) string {
	for _, f := range m.fields {
		if f.key == key {
			return f.input.Value()
		}
	}
	return ""
}

// SetValue sets the value of field key
func (m *FormModel) SetValue(key, value string) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].input.SetValue(value)
			return
		}
	}
}

// Request builds a viewing request from the form values
func (m FormModel) Request() *models.ViewingRequest {
	return &models.ViewingRequest{
		PropertyID:    m.propertyID,
		Name:          strings.TrimSpace(m.Value("name")),
		Email:         strings.TrimSpace(m.Value("email")),
		Phone:         strings.TrimSpace(m.Value("phone")),
		PreferredDate: strings.TrimSpace(m.Value("preferred_date")),
		PreferredTime: strings.TrimSpace(m.Value("preferred_time")),
		Message:       strings.TrimSpace(m.Value("message")),
	}
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitted != nil {
			switch msg.String() {
			case "enter", "n":
				m.Reset()
				return m, textinput.Blink
			case "esc", "q":
				return m, hideForm
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, hideForm
		case "tab", "down":
			m.focus(m.focused + 1)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.focus(m.focused - 1)
			return m, textinput.Blink
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focused == len(m.fields)-1 {
				return m, m.submit()
			}
			m.focus(m.focused + 1)
			return m, textinput.Blink
		}

	case messages.ViewingSubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.submitErr = msg.Err
			var fieldErrs models.FieldErrors
			if errors.As(msg.Err, &fieldErrs) {
				m.errors = fieldErrs
			}
			return m, nil
		}
		m.submitted = msg.Request
		m.submitErr = nil
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Route remaining input to the focused field
	if m.submitted == nil && !m.submitting {
		var cmd tea.Cmd
		m.fields[m.focused].input, cmd = m.fields[m.focused].input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *FormModel) focus(i int) {
	n := len(m.fields)
	i = (i + n) % n
	m.fields[m.focused].input.Blur()
	m.focused = i
	m.fields[m.focused].input.Focus()
}

// submit validates the form and hands the request to the host. A second
// submission within SubmitDebounce is dropped.
func (m *FormModel) submit() tea.Cmd {
	now := m.now()
	if m.submitting || (!m.lastSubmit.IsZero() && now.Sub(m.lastSubmit) < SubmitDebounce) {
		return nil
	}
	m.lastSubmit = now

	req := m.Request()
	if err := req.Validate(now); err != nil {
		var fieldErrs models.FieldErrors
		if errors.As(err, &fieldErrs) {
			m.errors = fieldErrs
		}
		return nil
	}

	m.errors = nil
	m.submitErr = nil
	m.submitting = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return messages.SubmitViewingMsg{Request: req}
	})
}

func hideForm() tea.Msg {
	return messages.HideFormMsg{}
}

// View renders the form modal
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render("Request a viewing"))
	b.WriteString("\n")

	if m.submitted != nil {
		b.WriteString(m.renderSuccess())
	} else {
		b.WriteString(m.renderFields())
	}

	// Wrap in modal style - responsive width (60% of screen, 44-64 chars)
	modalWidth := min(max(m.width*60/100, 44), 64)
	modal := styles.StyleModal.Width(modalWidth).Render(b.String())

	// Center in screen
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m FormModel) renderFields() string {
	var b strings.Builder

	for i, f := range m.fields {
		b.WriteString(styles.StyleInputLabel.Render(f.label))
		b.WriteString("\n")
		style := styles.StyleInput
		if i == m.focused {
			style = styles.StyleInputFocused
		}
		b.WriteString(style.Render(f.input.View()))
		b.WriteString("\n")
		if msg, ok := m.errors[f.key]; ok {
			b.WriteString(styles.StyleFieldError.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " Sending request...")
	case m.submitErr != nil && len(m.errors) == 0:
		b.WriteString(styles.StyleError.Render("✗ " + m.submitErr.Error()))
	default:
		b.WriteString(styles.StylePrimary.Render("Request viewing"))
	}
	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("tab next • enter submit on last field • ctrl+s submit • esc close"))

	return b.String()
}

func (m FormModel) renderSuccess() string {
	var b strings.Builder

	b.WriteString(styles.StyleSuccess.Render("✓ Request sent!"))
	b.WriteString("\n\n")
	b.WriteString("We'll be in touch to confirm your viewing.\n")
	if d, err := time.Parse(models.DateLayout, m.submitted.PreferredDate); err == nil {
		when := d.Format("Monday 2 January")
		if m.submitted.PreferredTime != "" {
			when += " at " + m.submitted.PreferredTime
		}
		b.WriteString(styles.StyleTitle.Render(when))
		b.WriteString("\n")
	}
	if !m.submitted.CreatedAt.IsZero() {
		b.WriteString(styles.StyleTextMuted.Render("Submitted " + humanize.Time(m.submitted.CreatedAt)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("enter submit another • esc close"))

	return b.String()
}
