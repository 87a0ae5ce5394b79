package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lvdark77/Online-Store/checkout"
	"github.com/lvdark77/Online-Store/persist"
	"github.com/lvdark77/Online-Store/store"
)

// Session bundles the per-visitor state containers: one cart, one user store
// and one checkout workflow. Nothing in here is shared between sessions.
type Session struct {
	ID       string
	Cart     *store.CartStore
	Users    *store.UserStore
	Checkout *checkout.Workflow

	lastSeen time.Time // guarded by the manager's mutex
}

// Manager owns the live sessions. Idle sessions are dropped after the TTL;
// their persisted user and orders records stay in storage and are reloaded
// if the same session id ever comes back.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	records persist.Store
	ttl     time.Duration
	log     *slog.Logger
}

func NewManager(records persist.Store, ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		records:  records,
		ttl:      ttl,
		log:      log,
	}
}

// Create starts a fresh session with empty state containers.
func (m *Manager) Create(ctx context.Context) *Session {
	id := uuid.NewString()
	cart := store.NewCartStore()
	users := store.NewUserStore(ctx, m.records, id, m.log)
	sess := &Session{
		ID:       id,
		Cart:     cart,
		Users:    users,
		Checkout: checkout.New(cart, users),
		lastSeen: time.Now(),
	}
	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return sess
}

// Get resolves a session by id and marks it as recently used. A session that
// was swept as idle is rebuilt from its persisted records with an empty cart.
func (m *Manager) Get(ctx context.Context, id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		cart := store.NewCartStore()
		users := store.NewUserStore(ctx, m.records, id, m.log)
		sess = &Session{
			ID:       id,
			Cart:     cart,
			Users:    users,
			Checkout: checkout.New(cart, users),
		}
		m.sessions[id] = sess
	}
	sess.lastSeen = time.Now()
	return sess, true
}

// Sweep drops sessions idle for longer than the TTL and reports how many.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// SweepLoop runs Sweep on a ticker until the context is cancelled.
func (m *Manager) SweepLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := m.Sweep(now); removed > 0 {
				m.log.Info("swept idle sessions", "removed", removed)
			}
		}
	}
}
