package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager keeps the live form sessions, keyed by an opaque token handed to
// the client when the form starts. Sessions untouched for longer than the TTL
// are swept.
type Manager struct {
	mu    sync.Mutex
	forms map[string]*session
	ttl   time.Duration
	log   *zap.Logger
}

type session struct {
	form     *Form
	lastSeen time.Time
}

func NewManager(ttl time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		forms: make(map[string]*session),
		ttl:   ttl,
		log:   log.With(zap.String("component", "form_manager")),
	}
}

// Start creates a fresh form session and returns its token.
func (m *Manager) Start() (string, *Form) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	form := NewForm()
	m.forms[token] = &session{form: form, lastSeen: time.Now()}

	m.log.Info("Form session started", zap.String("form_token", token))
	return token, form
}

// Get returns the form for a token and refreshes its last-seen time.
func (m *Manager) Get(token string) (*Form, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.forms[token]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.form, true
}

// Remove discards a form session.
func (m *Manager) Remove(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.forms, token)
}

// Sweep drops sessions idle past the TTL and reports how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	removed := 0
	for token, s := range m.forms {
		if s.lastSeen.Before(cutoff) {
			delete(m.forms, token)
			removed++
		}
	}

	if removed > 0 {
		m.log.Info("Swept idle form sessions", zap.Int("removed", removed))
	}
	return removed
}

// Run sweeps periodically until the context is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
