package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"rhystmorgan/aniTerm/internal/validation"
)

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func newTestLoginForm() Form {
	catalog := validation.NewCatalog(language.Spanish)
	return NewForm(validation.NewLoginSchema(catalog), nil,
		FieldSpec{Name: validation.FieldEmail, Label: "EMAIL"},
		FieldSpec{Name: validation.FieldPassword, Label: "PASSWORD", Secure: true},
	)
}

func TestFormTypingAndFocus(t *testing.T) {
	form := newTestLoginForm()

	if form.Focused() != validation.FieldEmail {
		t.Fatalf("Expected focus on email, got %s", form.Focused())
	}

	form, _ = form.Update(typeText("a@b.com"))
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.Focused() != validation.FieldPassword {
		t.Fatalf("Expected focus on password, got %s", form.Focused())
	}
	form, _ = form.Update(typeText("Abcdef1!"))

	if form.Value(validation.FieldEmail) != "a@b.com" {
		t.Errorf("Expected email 'a@b.com', got '%s'", form.Value(validation.FieldEmail))
	}
	if form.Value(validation.FieldPassword) != "Abcdef1!" {
		t.Errorf("Expected password 'Abcdef1!', got '%s'", form.Value(validation.FieldPassword))
	}

	// Focus wraps in both directions.
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.Focused() != validation.FieldEmail {
		t.Errorf("Expected focus to wrap to email, got %s", form.Focused())
	}
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if form.Focused() != validation.FieldPassword {
		t.Errorf("Expected focus to wrap to password, got %s", form.Focused())
	}
}

func TestFormSubmitReplacesErrors(t *testing.T) {
	form := newTestLoginForm()

	result := form.Submit()
	if result.Valid() {
		t.Fatal("Expected empty form to be invalid")
	}
	if form.Error(validation.FieldEmail) == "" || form.Error(validation.FieldPassword) == "" {
		t.Fatal("Expected errors on both fields")
	}

	form.SetValue(validation.FieldEmail, "a@b.com")
	form.Submit()
	if form.Error(validation.FieldEmail) != "" {
		t.Errorf("Expected email error to be cleared, got %q", form.Error(validation.FieldEmail))
	}
	if form.Error(validation.FieldPassword) == "" {
		t.Error("Expected password error to remain")
	}

	form.SetValue(validation.FieldPassword, "Abcdef1!")
	if result := form.Submit(); !result.Valid() {
		t.Errorf("Expected valid form, got %v", result.Messages())
	}
	if form.Error(validation.FieldPassword) != "" {
		t.Errorf("Expected no errors after valid submit, got %q", form.Error(validation.FieldPassword))
	}
}

func TestFormValuesAreACopy(t *testing.T) {
	form := newTestLoginForm()
	form.SetValue(validation.FieldEmail, "a@b.com")

	values := form.Values()
	values[validation.FieldEmail] = "changed"

	if form.Value(validation.FieldEmail) != "a@b.com" {
		t.Errorf("Expected form input to be unchanged, got '%s'", form.Value(validation.FieldEmail))
	}
}

func TestFormViewShowsErrorsAndMasksSecrets(t *testing.T) {
	form := newTestLoginForm()
	form.SetValue(validation.FieldEmail, "abexample.com")
	form.SetValue(validation.FieldPassword, "secret")
	form.Submit()

	view := form.View()
	if !strings.Contains(view, form.Error(validation.FieldEmail)) {
		t.Errorf("Expected view to contain email error %q", form.Error(validation.FieldEmail))
	}
	if strings.Contains(view, "secret") {
		t.Error("Expected password to be masked")
	}
}

func TestFormReset(t *testing.T) {
	form := newTestLoginForm()
	form.SetValue(validation.FieldEmail, "bad")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Submit()

	form.Reset()

	if form.Value(validation.FieldEmail) != "" {
		t.Errorf("Expected empty email after reset, got '%s'", form.Value(validation.FieldEmail))
	}
	if form.Error(validation.FieldEmail) != "" {
		t.Error("Expected errors to be cleared after reset")
	}
	if form.Focused() != validation.FieldEmail {
		t.Errorf("Expected focus on email after reset, got %s", form.Focused())
	}
}
