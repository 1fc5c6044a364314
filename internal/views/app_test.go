package views

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rhystmorgan/aniTerm/internal/config"
	"rhystmorgan/aniTerm/internal/session"
	"rhystmorgan/aniTerm/internal/validation"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	cfg := config.GetDefaultConfig()
	app, err := NewAppModel(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(app.Shutdown)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return model.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	return model.(AppModel), cmd
}

// sendAndFollow delivers msg and then the message produced by the
// returned command, which must be synchronous.
func sendAndFollow(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	m, cmd := send(t, m, msg)
	if cmd == nil {
		t.Fatalf("Expected a command after %T", msg)
	}
	m, _ = send(t, m, cmd())
	return m
}

func fillForm(t *testing.T, m AppModel, values ...string) AppModel {
	t.Helper()
	for i, value := range values {
		if i > 0 {
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
		m, _ = send(t, m, typeText(value))
	}
	return m
}

func TestAppStartsOnHome(t *testing.T) {
	m := newTestApp(t)

	if m.State() != ViewHome {
		t.Errorf("Expected home view, got %v", m.State())
	}
	if !strings.Contains(m.View(), spanishCopy.HomeTitle) {
		t.Error("Expected home title in view")
	}
}

func TestAppLoadingBeforeWindowSize(t *testing.T) {
	app, err := NewAppModel(config.GetDefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	defer app.Shutdown()

	if app.View() != spanishCopy.Loading {
		t.Errorf("Expected loading text, got %q", app.View())
	}
}

func TestAppRejectsInvalidConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Language = "xx"

	if _, err := NewAppModel(cfg, nil); err == nil {
		t.Error("Expected error for invalid config")
	}
	if _, err := NewAppModel(nil, nil); err == nil {
		t.Error("Expected error for missing config")
	}
}

func TestHomeNavigation(t *testing.T) {
	m := newTestApp(t)

	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != ViewLogin {
		t.Fatalf("Expected login view, got %v", m.State())
	}

	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != ViewHome {
		t.Fatalf("Expected home view after esc, got %v", m.State())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != ViewRegister {
		t.Fatalf("Expected register view, got %v", m.State())
	}
}

func TestLoginShowsErrorsAndStays(t *testing.T) {
	m := newTestApp(t)
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = fillForm(t, m, "abexample.com", "abc")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no command for an invalid form")
	}
	if m.State() != ViewLogin {
		t.Fatalf("Expected to stay on login, got %v", m.State())
	}

	if got := m.login.form.Error(validation.FieldEmail); got != `El email debe contener el símbolo "@"` {
		t.Errorf("Unexpected email error %q", got)
	}
	if got := m.login.form.Error(validation.FieldPassword); got != "La contraseña debe tener al menos 4 caracteres" {
		t.Errorf("Unexpected password error %q", got)
	}
}

func TestLoginSuccessOpensSession(t *testing.T) {
	m := newTestApp(t)
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = fillForm(t, m, "a@b.com", "Abcdef1!")
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.State() != ViewSession {
		t.Fatalf("Expected session view, got %v", m.State())
	}
	if !m.IsSessionActive() {
		t.Error("Expected an active session")
	}
	if !strings.Contains(m.View(), spanishCopy.SessionGreeting) {
		t.Error("Expected greeting on the landing screen")
	}

	// Logging out returns to the login screen and closes the session.
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != ViewLogin {
		t.Fatalf("Expected login view after logout, got %v", m.State())
	}
	if m.IsSessionActive() {
		t.Error("Expected session to be closed after logout")
	}
	if len(m.Sessions().ActiveSessions()) != 0 {
		t.Error("Expected no active sessions after logout")
	}
}

func TestRegistrationFlow(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, NavigateMsg{State: ViewRegister})

	m = fillForm(t, m, "Alice", "a@b.com", "Abcdef1", "Different")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no command for mismatched passwords")
	}
	if got := m.register.form.Error(validation.FieldConfirmPassword); got != "Las contraseñas no coinciden." {
		t.Errorf("Expected mismatch message, got %q", got)
	}

	m, _ = send(t, m, NavigateMsg{State: ViewRegister})
	m = fillForm(t, m, "Alice", "a@b.com", "Abcdef1", "Abcdef1")
	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.State() != ViewLogin {
		t.Fatalf("Expected login view after registration, got %v", m.State())
	}
	if !strings.Contains(m.View(), spanishCopy.RegisterSuccess) {
		t.Error("Expected registration notice on login screen")
	}
	if m.IsSessionActive() {
		t.Error("Registration must not sign the user in")
	}
}

func TestRegisterSwitchToLogin(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, NavigateMsg{State: ViewRegister})

	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.State() != ViewLogin {
		t.Errorf("Expected login view, got %v", m.State())
	}

	m = sendAndFollow(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.State() != ViewRegister {
		t.Errorf("Expected register view, got %v", m.State())
	}
}

func TestNavigationResetsForm(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, NavigateMsg{State: ViewLogin})
	m = fillForm(t, m, "bad")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = send(t, m, NavigateMsg{State: ViewHome})
	m, _ = send(t, m, NavigateMsg{State: ViewLogin})

	if m.login.form.Value(validation.FieldEmail) != "" {
		t.Error("Expected login form to be cleared")
	}
	if m.login.form.Error(validation.FieldEmail) != "" {
		t.Error("Expected login errors to be cleared")
	}
}

func TestSessionExpiryReturnsToLogin(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, LoginSucceededMsg{Email: "a@b.com"})
	if m.State() != ViewSession {
		t.Fatalf("Expected session view, got %v", m.State())
	}

	if err := m.Sessions().Close("a@b.com"); err != nil {
		t.Fatalf("Failed to close session: %v", err)
	}

	m = sendAndFollow(t, m, sessionTickMsg(time.Now()))
	if m.State() != ViewLogin {
		t.Fatalf("Expected login view after expiry, got %v", m.State())
	}
	if !strings.Contains(m.View(), spanishCopy.SessionExpired) {
		t.Error("Expected expiry notice on login screen")
	}
}

func TestEnglishCopy(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Language = "en"
	app, err := NewAppModel(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	defer app.Shutdown()

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := model.(AppModel)
	m, _ = send(t, m, NavigateMsg{State: ViewLogin})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.login.form.Error(validation.FieldEmail); got != "Email is required" {
		t.Errorf("Expected English validation message, got %q", got)
	}
}

func TestFormatSessionDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{4*time.Minute + 5*time.Second, "4m 5s"},
		{2*time.Hour + 3*time.Minute, "2h 3m"},
	}

	for _, tt := range tests {
		if got := formatSessionDuration(tt.in); got != tt.want {
			t.Errorf("Expected %q for %v, got %q", tt.want, tt.in, got)
		}
	}
}

func TestSessionCreationFailureShowsError(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, NavigateMsg{State: ViewLogin})

	for i := 0; i < 5; i++ {
		if _, err := m.Sessions().Create(fmt.Sprintf("user%d@b.com", i)); err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
	}

	m = sendAndFollow(t, m, LoginSucceededMsg{Email: "a@b.com"})

	if m.State() != ViewLogin {
		t.Fatalf("Expected to stay on login, got %v", m.State())
	}
	if m.IsSessionActive() {
		t.Error("Expected no session for a rejected login")
	}
	if !strings.Contains(m.View(), session.ErrTooManySessions.Error()) {
		t.Error("Expected session error in view")
	}

	// Navigating away clears the error.
	m, _ = send(t, m, NavigateMsg{State: ViewHome})
	if strings.Contains(m.View(), session.ErrTooManySessions.Error()) {
		t.Error("Expected error to be cleared after navigation")
	}
}

func TestReplacedSessionEndsLandingScreen(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, LoginSucceededMsg{Email: "a@b.com"})

	// Signing in elsewhere issues a new token for the same email.
	if _, err := m.Sessions().Create("a@b.com"); err != nil {
		t.Fatalf("Failed to replace session: %v", err)
	}

	m = sendAndFollow(t, m, sessionTickMsg(time.Now()))
	if m.State() != ViewLogin {
		t.Fatalf("Expected login view after the token changed, got %v", m.State())
	}
}

func TestSessionTickKeepsLiveSession(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, LoginSucceededMsg{Email: "a@b.com"})

	m, cmd := send(t, m, sessionTickMsg(time.Now()))
	if cmd == nil {
		t.Error("Expected the next tick to be scheduled")
	}
	if m.State() != ViewSession {
		t.Errorf("Expected to stay on the landing screen, got %v", m.State())
	}
}

func TestExtendSessionKey(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, LoginSucceededMsg{Email: "a@b.com"})

	m, cmd := send(t, m, typeText("e"))
	if cmd != nil {
		t.Error("Expected no command when extending a live session")
	}
	if remaining := m.Sessions().TimeRemaining("a@b.com"); remaining < 4*time.Minute {
		t.Errorf("Expected a fresh timeout after extending, got %v", remaining)
	}

	if err := m.Sessions().Close("a@b.com"); err != nil {
		t.Fatalf("Failed to close session: %v", err)
	}
	m = sendAndFollow(t, m, typeText("e"))
	if m.State() != ViewLogin {
		t.Errorf("Expected login view when extending a closed session, got %v", m.State())
	}
}
