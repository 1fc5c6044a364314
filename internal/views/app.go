package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/config"
	"rhystmorgan/aniTerm/internal/session"
	"rhystmorgan/aniTerm/internal/validation"
)

type ViewState int

const (
	ViewHome ViewState = iota
	ViewLogin
	ViewRegister
	ViewSession
)

type AppModel struct {
	state  ViewState
	width  int
	height int
	config *config.AppConfig
	logger *zap.Logger
	copy   Copy

	sessions     *session.Manager
	currentEmail string

	home        *HomeModel
	login       *LoginModel
	register    *RegisterModel
	sessionView *SessionModel

	err error
}

type NavigateMsg struct {
	State  ViewState
	Notice string
}

type ErrorMsg struct {
	Err error
}

func NewAppModel(cfg *config.AppConfig, logger *zap.Logger) (*AppModel, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := validation.NewCatalog(cfg.LanguageTag())
	loginSchema, err := validation.SchemaFor(validation.FormLogin, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build login schema: %w", err)
	}
	registrationSchema, err := validation.SchemaFor(validation.FormRegistration, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build registration schema: %w", err)
	}

	sessionConfig := session.DefaultConfig()
	sessionConfig.DefaultTimeout = cfg.SessionTimeout
	c := CopyFor(cfg.LanguageTag())

	app := &AppModel{
		state:    ViewHome,
		config:   cfg,
		logger:   logger,
		copy:     c,
		sessions: session.NewManager(sessionConfig, logger.Named("session")),
		home:     NewHomeModel(c),
		login:    NewLoginModel(c, loginSchema, logger.Named("login")),
		register: NewRegisterModel(c, registrationSchema, logger.Named("register")),
	}

	return app, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case NavigateMsg:
		return m.navigateTo(msg.State, msg.Notice)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case LoginSucceededMsg:
		created, err := m.sessions.Create(msg.Email)
		if err != nil {
			m.logger.Error("failed to create session", zap.Error(err))
			return m, ShowError(fmt.Errorf("failed to create session: %w", err))
		}
		m.currentEmail = msg.Email
		m.sessionView = NewSessionModel(m.copy, m.sessions, created)
		m.logger.Info("login succeeded", zap.Int("active_sessions", len(m.sessions.ActiveSessions())))
		next, navCmd := m.navigateTo(ViewSession, "")
		return next, tea.Batch(navCmd, m.sessionView.Init())

	case RegisteredMsg:
		m.logger.Info("registration succeeded")
		return m.navigateTo(ViewLogin, m.copy.RegisterSuccess)

	case LogoutMsg:
		m.closeSession()
		return m.navigateTo(ViewLogin, "")

	case SessionExpiredMsg:
		if msg.Email == m.currentEmail {
			m.closeSession()
			return m.navigateTo(ViewLogin, m.copy.SessionExpired)
		}
		return m, nil
	}

	switch m.state {
	case ViewHome:
		if m.home != nil {
			*m.home, cmd = m.home.Update(msg)
		}
	case ViewLogin:
		if m.login != nil {
			*m.login, cmd = m.login.Update(msg)
		}
	case ViewRegister:
		if m.register != nil {
			*m.register, cmd = m.register.Update(msg)
		}
	case ViewSession:
		if m.sessionView != nil {
			*m.sessionView, cmd = m.sessionView.Update(msg)
		}
	}

	return m, cmd
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return m.copy.Loading
	}

	var content string

	switch m.state {
	case ViewHome:
		if m.home != nil {
			content = m.home.View()
		}
	case ViewLogin:
		if m.login != nil {
			content = m.login.View()
		}
	case ViewRegister:
		if m.register != nil {
			content = m.register.View()
		}
	case ViewSession:
		if m.sessionView != nil {
			content = m.sessionView.View()
		}
	default:
		content = "Unknown view"
	}

	if m.err != nil {
		content += "\n" + errorStyle.Bold(true).Padding(1).Render(fmt.Sprintf("Error: %s", m.err.Error()))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m AppModel) navigateTo(state ViewState, notice string) (AppModel, tea.Cmd) {
	// Leaving the landing screen without logging out is not allowed while
	// a session is live.
	if m.state == ViewSession && state != ViewLogin && m.IsSessionActive() {
		return m, nil
	}

	m.state = state
	m.err = nil
	m.logger.Debug("navigate", zap.String("view", m.getViewName(state)))

	var cmd tea.Cmd
	switch state {
	case ViewLogin:
		cmd = m.login.Reset()
		m.login.SetNotice(notice)
	case ViewRegister:
		cmd = m.register.Reset()
	}

	return m, cmd
}

func (m *AppModel) getViewName(state ViewState) string {
	switch state {
	case ViewHome:
		return "home"
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewSession:
		return "session"
	default:
		return "unknown"
	}
}

func (m *AppModel) closeSession() {
	if m.currentEmail == "" {
		return
	}
	if err := m.sessions.Close(m.currentEmail); err != nil {
		m.logger.Debug("session already closed", zap.Error(err))
	}
	m.currentEmail = ""
	m.sessionView = nil
	m.logger.Info("logged out")
}

func NavigateTo(state ViewState, notice string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{State: state, Notice: notice}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

func (m *AppModel) State() ViewState {
	return m.state
}

func (m *AppModel) Sessions() *session.Manager {
	return m.sessions
}

func (m *AppModel) IsSessionActive() bool {
	if m.currentEmail == "" {
		return false
	}
	_, active := m.sessions.Get(m.currentEmail)
	return active
}

func (m *AppModel) Shutdown() {
	if m.sessions != nil {
		m.sessions.Shutdown()
	}
	_ = m.logger.Sync()
}
