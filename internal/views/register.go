package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/validation"
)

type RegisterModel struct {
	copy Copy
	form Form
	keys formKeyMap
	help help.Model
}

// RegisteredMsg is sent once the registration form validates. Nothing is
// stored; the account exists only for the message.
type RegisteredMsg struct {
	Name  string
	Email string
}

func NewRegisterModel(c Copy, schema *validation.FormSchema, logger *zap.Logger) *RegisterModel {
	form := NewForm(schema, logger,
		FieldSpec{Name: validation.FieldName, Label: c.NameLabel, Placeholder: c.NamePrompt},
		FieldSpec{Name: validation.FieldEmail, Label: c.EmailLabel, Placeholder: c.GmailPrompt},
		FieldSpec{Name: validation.FieldPassword, Label: c.PasswordLabel, Placeholder: "••••••••", Secure: true},
		FieldSpec{Name: validation.FieldConfirmPassword, Label: c.ConfirmLabel, Placeholder: "••••••••", Secure: true},
	)

	return &RegisterModel{
		copy: c,
		form: form,
		keys: newFormKeyMap(c, c.ToLogin),
		help: help.New(),
	}
}

func (m *RegisterModel) Reset() tea.Cmd {
	return m.form.Reset()
}

func (m RegisterModel) Init() tea.Cmd {
	return nil
}

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Back):
			return m, NavigateTo(ViewHome, "")
		case key.Matches(msg, m.keys.Switch):
			return m, NavigateTo(ViewLogin, "")
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m RegisterModel) submit() (RegisterModel, tea.Cmd) {
	result := m.form.Submit()
	if !result.Valid() {
		return m, nil
	}

	registered := RegisteredMsg{
		Name:  m.form.Value(validation.FieldName),
		Email: m.form.Value(validation.FieldEmail),
	}
	return m, func() tea.Msg {
		return registered
	}
}

func (m RegisterModel) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(m.copy.RegisterTitle))
	content.WriteString("\n\n")

	content.WriteString(m.form.View())

	requirements := m.copy.Requirements
	for _, line := range m.copy.RequirementList {
		requirements += "\n- " + line
	}
	content.WriteString(noteStyle.Render(requirements))
	content.WriteString("\n\n")

	content.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return cardStyle.Render(content.String())
}
