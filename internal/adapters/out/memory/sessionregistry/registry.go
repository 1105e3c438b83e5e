// Package sessionregistry keeps the user-to-session bindings of one process
// in memory.
//
// Bindings are split into shards by a hash of the user ID. Each shard owns a
// mutex and the forward map user→session; every change to the reverse entry
// of a session happens under the shard lock of its user, so both directions
// stay consistent without a global lock. Logout targets live in a sync.Map
// whose LoadAndDelete is the test-and-clear.
package sessionregistry

import (
	"context"
	"hash/fnv"
	"sync"
)

const defaultShards = 32

type shard struct {
	mu      sync.Mutex
	forward map[string]string
}

// Registry implements ports.SessionRegistry for a single instance.
//
// Example:
//
//	registry := sessionregistry.New()
//	_ = registry.RegisterLogin(ctx, "clerk-1", "s1")
//	_ = registry.RegisterLogin(ctx, "clerk-1", "s2")
//	forced, _ := registry.RemoveLogoutTarget(ctx, "s1") // true, exactly once
type Registry struct {
	// shards hold the forward binding userID -> sessionID. A user always
	// maps to the same shard, whose lock serializes that user's changes.
	shards []*shard
	// reverse maps sessionID -> userID
	reverse sync.Map
	// targets holds sessionID -> struct{} for replaced sessions
	targets sync.Map
}

// New creates a registry with the default shard count.
func New() *Registry {
	return NewWithShards(defaultShards)
}

// NewWithShards creates a registry with n shards, at least one.
func NewWithShards(n int) *Registry {
	if n < 1 {
		n = 1
	}
	r := &Registry{shards: make([]*shard, n)}
	for i := range r.shards {
		r.shards[i] = &shard{forward: make(map[string]string)}
	}
	return r
}

func (r *Registry) shardOf(userID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return r.shards[h.Sum32()%uint32(len(r.shards))]
}

// RegisterLogin binds userID to sessionID. A previous session of the user is
// unbound and becomes a logout target. Logging in again with the bound
// session changes nothing.
func (r *Registry) RegisterLogin(_ context.Context, userID, sessionID string) error {
	s := r.shardOf(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.forward[userID]
	if ok && previous == sessionID {
		return nil
	}

	s.forward[userID] = sessionID
	r.reverse.Store(sessionID, userID)
	if ok {
		// The mark must exist before the reverse entry disappears: a reader
		// that misses the binding then finds the mark.
		r.targets.Store(previous, struct{}{})
		r.reverse.Delete(previous)
	}
	return nil
}

// RemoveLogoutTarget reports whether sessionID was replaced by a later login
// and clears the mark, so only the first caller sees true.
func (r *Registry) RemoveLogoutTarget(_ context.Context, sessionID string) (bool, error) {
	_, removed := r.targets.LoadAndDelete(sessionID)
	return removed, nil
}

// UnregisterBySessionID removes the binding of sessionID and any logout mark
// it carries. Unknown sessions are a no-op.
func (r *Registry) UnregisterBySessionID(_ context.Context, sessionID string) error {
	value, ok := r.reverse.Load(sessionID)
	if !ok {
		// Replaced or never bound. A replacing login stores the mark before
		// it drops the reverse entry, so the mark is already there.
		r.targets.Delete(sessionID)
		return nil
	}
	userID := value.(string)

	s := r.shardOf(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	// A concurrent login of the same user may have replaced the binding
	// between Load and Lock.
	if current, bound := r.reverse.Load(sessionID); bound && current.(string) == userID {
		r.reverse.Delete(sessionID)
		if s.forward[userID] == sessionID {
			delete(s.forward, userID)
		}
	}
	r.targets.Delete(sessionID)
	return nil
}

// SessionOf returns the session currently bound to userID.
func (r *Registry) SessionOf(_ context.Context, userID string) (string, bool, error) {
	s := r.shardOf(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.forward[userID]
	return sessionID, ok, nil
}

// UserOf returns the user bound to sessionID.
func (r *Registry) UserOf(_ context.Context, sessionID string) (string, bool, error) {
	value, ok := r.reverse.Load(sessionID)
	if !ok {
		return "", false, nil
	}
	return value.(string), true, nil
}
