// Package sessiontracker unregisters sessions that have been idle for longer
// than a timeout.
package sessiontracker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"procurement/internal/core/ports"

	"github.com/patrickmn/go-cache"
)

// Unregisterer is the part of the session registry the tracker needs.
type Unregisterer interface {
	UnregisterBySessionID(ctx context.Context, sessionID string) error
}

// entry is stored per session. forgotten marks a session removed by Forget,
// whose registry binding is already gone.
type entry struct {
	forgotten atomic.Bool
}

// Tracker implements ports.SessionActivity on top of a TTL cache. Expired
// entries are evicted by DeleteExpired; the eviction callback unregisters the
// session.
type Tracker struct {
	// cache holds one *entry per session, expiring after the idle timeout
	cache *cache.Cache
	// registry is unbound from when an entry expires
	registry Unregisterer
	logger   *slog.Logger
}

var _ ports.SessionActivity = (*Tracker)(nil)

// New creates a tracker. The cache runs no janitor of its own; the caller
// schedules DeleteExpired.
func New(idleTimeout time.Duration, registry Unregisterer, logger *slog.Logger) *Tracker {
	t := &Tracker{
		cache:    cache.New(idleTimeout, 0),
		registry: registry,
		logger:   logger.With("component", "session-tracker"),
	}
	t.cache.OnEvicted(t.evicted)
	return t
}

// Touch restarts the idle timer of sessionID.
func (t *Tracker) Touch(sessionID string) {
	t.cache.SetDefault(sessionID, &entry{})
}

// Forget stops tracking sessionID without unregistering it.
func (t *Tracker) Forget(sessionID string) {
	if value, ok := t.cache.Get(sessionID); ok {
		value.(*entry).forgotten.Store(true)
	}
	t.cache.Delete(sessionID)
}

// DeleteExpired evicts every idle session.
func (t *Tracker) DeleteExpired() {
	t.cache.DeleteExpired()
}

// Len returns the number of tracked sessions, expired ones included until
// the next sweep.
func (t *Tracker) Len() int {
	return t.cache.ItemCount()
}

func (t *Tracker) evicted(sessionID string, value any) {
	if e, ok := value.(*entry); ok && e.forgotten.Load() {
		return
	}
	if err := t.registry.UnregisterBySessionID(context.Background(), sessionID); err != nil {
		t.logger.Error("failed to unregister idle session", "session", sessionID, "error", err)
		return
	}
	t.logger.Info("idle session unregistered", "session", sessionID)
}
