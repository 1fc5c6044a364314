package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("maximum number of sessions reached")
)

// Manager keeps the simulated sign-in sessions of the running process.
// Sessions live in memory only and disappear on shutdown.
type Manager struct {
	sessions        map[string]*Session
	config          *Config
	logger          *zap.Logger
	mu              sync.RWMutex
	now             func() time.Time
	cleanupTicker   *time.Ticker
	activityChannel chan Activity
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

type Session struct {
	Email        string
	Token        string
	CreatedAt    time.Time
	LastActivity time.Time
	ExpiresAt    time.Time
	IsActive     bool
}

type Config struct {
	DefaultTimeout  time.Duration
	MaxSessions     int
	CleanupInterval time.Duration
	ExpiringWithin  time.Duration
}

type Activity struct {
	Email     string
	Action    string
	Timestamp time.Time
	ViewName  string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusInactive Status = "inactive"
)

func DefaultConfig() *Config {
	return &Config{
		DefaultTimeout:  5 * time.Minute,
		MaxSessions:     5,
		CleanupInterval: 30 * time.Second,
		ExpiringWithin:  time.Minute,
	}
}

func NewManager(config *Config, logger *zap.Logger) *Manager {
	return newManager(config, logger, time.Now)
}

// newManager takes the clock before the background routines start reading
// it.
func newManager(config *Config, logger *zap.Logger, now func() time.Time) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		sessions:        make(map[string]*Session),
		config:          config,
		logger:          logger,
		now:             now,
		activityChannel: make(chan Activity, 100),
		stopCleanup:     make(chan struct{}),
	}

	m.startCleanupRoutine()
	m.startActivityMonitor()

	return m
}

// Create opens a session for email, replacing any previous one.
func (m *Manager) Create(email string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[email]; !exists && len(m.sessions) >= m.config.MaxSessions {
		return nil, ErrTooManySessions
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := m.now()
	session := &Session{
		Email:        email,
		Token:        token,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(m.config.DefaultTimeout),
		IsActive:     true,
	}
	m.sessions[email] = session

	m.logger.Info("session created", zap.Time("expires_at", session.ExpiresAt))
	return session, nil
}

// Get returns a copy of the live session for email.
func (m *Manager) Get(email string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[email]
	if !exists || !session.IsActive || m.now().After(session.ExpiresAt) {
		return Session{}, false
	}
	return *session, true
}

// Validate reports whether token belongs to the live session of email.
func (m *Manager) Validate(email, token string) bool {
	session, ok := m.Get(email)
	return ok && token != "" && session.Token == token
}

// Extend restarts the timeout of the session for email.
func (m *Manager) Extend(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.extendLocked(email, m.now()) {
		return ErrSessionNotFound
	}
	m.logger.Debug("session extended")
	return nil
}

// extendLocked must be called with mu held.
func (m *Manager) extendLocked(email string, at time.Time) bool {
	session, exists := m.sessions[email]
	if !exists || !session.IsActive {
		return false
	}

	session.LastActivity = at
	session.ExpiresAt = at.Add(m.config.DefaultTimeout)
	return true
}

// RecordActivity extends the session asynchronously. Activity is dropped
// when the queue is full.
func (m *Manager) RecordActivity(email, action, viewName string) {
	activity := Activity{
		Email:     email,
		Action:    action,
		Timestamp: m.now(),
		ViewName:  viewName,
	}

	select {
	case m.activityChannel <- activity:
	default:
	}
}

func (m *Manager) Close(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[email]
	if !exists {
		return ErrSessionNotFound
	}

	session.IsActive = false
	session.Token = ""
	delete(m.sessions, email)

	m.logger.Info("session closed")
	return nil
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for email, session := range m.sessions {
		session.IsActive = false
		session.Token = ""
		delete(m.sessions, email)
	}
}

// ActiveSessions lists the emails with a live session.
func (m *Manager) ActiveSessions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	var active []string
	for email, session := range m.sessions {
		if session.IsActive && now.Before(session.ExpiresAt) {
			active = append(active, email)
		}
	}
	return active
}

func (m *Manager) Status(email string) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[email]
	if !exists || !session.IsActive {
		return StatusInactive
	}

	now := m.now()
	if now.After(session.ExpiresAt) {
		return StatusExpired
	}
	if session.ExpiresAt.Sub(now) < m.config.ExpiringWithin {
		return StatusExpiring
	}
	return StatusActive
}

func (m *Manager) TimeRemaining(email string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[email]
	if !exists || !session.IsActive {
		return 0
	}

	remaining := session.ExpiresAt.Sub(m.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Shutdown stops the background routines and drops every session. It is
// safe to call more than once.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		close(m.stopCleanup)
		if m.cleanupTicker != nil {
			m.cleanupTicker.Stop()
		}
		m.CloseAll()
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (m *Manager) startCleanupRoutine() {
	m.cleanupTicker = time.NewTicker(m.config.CleanupInterval)

	go func() {
		for {
			select {
			case <-m.cleanupTicker.C:
				m.cleanupExpired()
			case <-m.stopCleanup:
				return
			}
		}
	}()
}

func (m *Manager) cleanupExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for email, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			session.IsActive = false
			session.Token = ""
			delete(m.sessions, email)
			m.logger.Debug("session expired")
		}
	}
}

func (m *Manager) startActivityMonitor() {
	go func() {
		for {
			select {
			case activity := <-m.activityChannel:
				m.handleActivity(activity)
			case <-m.stopCleanup:
				return
			}
		}
	}()
}

func (m *Manager) handleActivity(activity Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.extendLocked(activity.Email, activity.Timestamp)
}
