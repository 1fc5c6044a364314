package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/aniTerm/internal/session"
)

// SessionModel is the landing screen shown after a successful login.
type SessionModel struct {
	copy     Copy
	sessions *session.Manager
	email    string
	token    string
}

type sessionTickMsg time.Time

// LogoutMsg ends the current session.
type LogoutMsg struct{}

// SessionExpiredMsg reports that the session timed out while on screen.
type SessionExpiredMsg struct {
	Email string
}

func NewSessionModel(c Copy, sessions *session.Manager, s *session.Session) *SessionModel {
	return &SessionModel{
		copy:     c,
		sessions: sessions,
		email:    s.Email,
		token:    s.Token,
	}
}

func (m SessionModel) Init() tea.Cmd {
	return sessionTick()
}

func (m SessionModel) Update(msg tea.Msg) (SessionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "l":
			return m, func() tea.Msg { return LogoutMsg{} }
		case "e":
			if err := m.sessions.Extend(m.email); err != nil {
				return m, m.expired()
			}
		default:
			m.sessions.RecordActivity(m.email, "keypress", "session")
		}

	case sessionTickMsg:
		// A replaced or closed session no longer matches the token.
		if !m.sessions.Validate(m.email, m.token) {
			return m, m.expired()
		}
		return m, sessionTick()
	}

	return m, nil
}

func (m SessionModel) expired() tea.Cmd {
	email := m.email
	return func() tea.Msg { return SessionExpiredMsg{Email: email} }
}

func (m SessionModel) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(m.copy.SessionGreeting))
	content.WriteString("\n\n")
	content.WriteString(subtitleStyle.Render(m.copy.SessionWelcome))
	content.WriteString("\n\n")
	content.WriteString(noteStyle.Render(m.copy.SessionQuestion + "\n" + m.copy.SessionHint))
	content.WriteString("\n\n")

	content.WriteString(m.renderStatus())
	content.WriteString("\n\n")

	content.WriteString(selectedStyle.Render("> " + m.copy.Logout))
	content.WriteString("\n")
	content.WriteString(helpStyle.Render(m.copy.ExtendHint))
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render(m.copy.SessionQuote))

	return cardStyle.Render(content.String())
}

func (m SessionModel) renderStatus() string {
	status := m.sessions.Status(m.email)

	var colour string
	switch status {
	case session.StatusActive:
		colour = Colours.Green
	case session.StatusExpiring:
		colour = Colours.Cyan300
	default:
		colour = Colours.Red400
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colour)).
		Bold(true)

	if status == session.StatusExpired || status == session.StatusInactive {
		return statusStyle.Render("● " + m.copy.SessionExpired)
	}

	remaining := m.sessions.TimeRemaining(m.email)
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		statusStyle.Render("● "),
		helpStyle.Render(fmt.Sprintf("%s %s · %s", m.copy.SessionExpires, formatSessionDuration(remaining), m.email)),
	)
}

func sessionTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

func formatSessionDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
