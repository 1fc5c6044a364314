package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/validation"
)

type LoginModel struct {
	copy   Copy
	form   Form
	keys   formKeyMap
	help   help.Model
	notice string
}

// LoginSucceededMsg is sent once the login form validates.
type LoginSucceededMsg struct {
	Email string
}

func NewLoginModel(c Copy, schema *validation.FormSchema, logger *zap.Logger) *LoginModel {
	form := NewForm(schema, logger,
		FieldSpec{Name: validation.FieldEmail, Label: c.EmailLabel, Placeholder: c.EmailPrompt},
		FieldSpec{Name: validation.FieldPassword, Label: c.PasswordLabel, Placeholder: "••••••••", Secure: true},
	)

	return &LoginModel{
		copy: c,
		form: form,
		keys: newFormKeyMap(c, c.ToRegister),
		help: help.New(),
	}
}

// SetNotice shows a one-off message above the form, such as a
// registration confirmation.
func (m *LoginModel) SetNotice(notice string) {
	m.notice = notice
}

// Reset clears the form for a fresh visit.
func (m *LoginModel) Reset() tea.Cmd {
	m.notice = ""
	return m.form.Reset()
}

func (m LoginModel) Init() tea.Cmd {
	return nil
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Back):
			return m, NavigateTo(ViewHome, "")
		case key.Matches(msg, m.keys.Switch):
			return m, NavigateTo(ViewRegister, "")
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	result := m.form.Submit()
	if !result.Valid() {
		m.notice = ""
		return m, nil
	}

	email := m.form.Value(validation.FieldEmail)
	return m, func() tea.Msg {
		return LoginSucceededMsg{Email: email}
	}
}

func (m LoginModel) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("⚡ " + m.copy.LoginTitle))
	content.WriteString("\n")
	content.WriteString(subtitleStyle.Render(m.copy.LoginSubtitle))
	content.WriteString("\n\n")

	if m.notice != "" {
		content.WriteString(successStyle.Render(m.notice))
		content.WriteString("\n\n")
	}

	content.WriteString(m.form.View())
	content.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return cardStyle.Render(content.String())
}
