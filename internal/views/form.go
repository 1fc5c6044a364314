package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/validation"
)

// FieldSpec describes one text entry of a form.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Secure      bool
	CharLimit   int
}

type formField struct {
	spec  FieldSpec
	input textinput.Model
}

// Form is a column of labelled inputs validated against a schema. The
// values and errors it shows are replaced together on every submit.
type Form struct {
	schema *validation.FormSchema
	logger *zap.Logger
	fields []formField
	focus  int
	errors map[string]string
}

func NewForm(schema *validation.FormSchema, logger *zap.Logger, specs ...FieldSpec) Form {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := make([]formField, len(specs))
	for i, spec := range specs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = spec.Placeholder
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Colours.Blue300))
		input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Colours.White))
		input.CharLimit = spec.CharLimit
		if input.CharLimit == 0 {
			input.CharLimit = 64
		}
		if spec.Secure {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		fields[i] = formField{spec: spec, input: input}
	}

	f := Form{
		schema: schema,
		logger: logger,
		fields: fields,
	}
	f.setFocus(0)
	return f
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % len(f.fields))
		case "shift+tab", "up":
			return f, f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

// Submit validates the current input and replaces the shown errors with
// the outcome.
func (f *Form) Submit() validation.ValidationResult {
	result := validation.Validate(f.schema, f.Values())
	f.errors = result.Messages()

	f.logger.Info("form submitted",
		zap.String("form", f.schema.Name),
		zap.Bool("valid", result.Valid()),
		zap.Strings("invalid_fields", result.Fields()),
	)

	return result
}

// Values returns a fresh copy of the current input.
func (f Form) Values() validation.Values {
	values := make(validation.Values, len(f.fields))
	for _, field := range f.fields {
		values[field.spec.Name] = field.input.Value()
	}
	return values
}

func (f Form) Value(name string) string {
	for _, field := range f.fields {
		if field.spec.Name == name {
			return field.input.Value()
		}
	}
	return ""
}

func (f *Form) SetValue(name, value string) {
	for i := range f.fields {
		if f.fields[i].spec.Name == name {
			f.fields[i].input.SetValue(value)
			return
		}
	}
}

func (f Form) Error(name string) string {
	return f.errors[name]
}

func (f Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].spec.Name
}

// Reset clears input and errors and focuses the first field.
func (f *Form) Reset() tea.Cmd {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.errors = nil
	return f.setFocus(0)
}

func (f *Form) setFocus(index int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focus = index
	var cmd tea.Cmd
	for i := range f.fields {
		if i == index {
			cmd = f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
	return cmd
}

func (f Form) View() string {
	var content strings.Builder

	for i, field := range f.fields {
		content.WriteString(labelStyle.Render(field.spec.Label))
		content.WriteString("\n")

		style := inputStyle
		message := f.errors[field.spec.Name]
		switch {
		case message != "":
			style = invalidInputStyle
		case i == f.focus:
			style = focusedInputStyle
		}
		content.WriteString(style.Render(field.input.View()))
		content.WriteString("\n")

		if message != "" {
			content.WriteString(errorStyle.Render("⚠️ " + message))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	return content.String()
}
