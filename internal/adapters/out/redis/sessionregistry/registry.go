// Package sessionregistry keeps user-to-session bindings in Redis so that
// several service instances share them.
//
// Keys:
//
//	<prefix>user:<userID>      -> sessionID
//	<prefix>session:<sessionID> -> userID
//	<prefix>logout_targets      set of sessionIDs
//	<prefix>activity            sorted set of sessionIDs by last touch (ms)
//
// Every change that touches more than one key runs as a single Lua script.
package sessionregistry

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key of the registry and its activity set.
const DefaultPrefix = "procurement:"

const (
	userPart    = "user:"
	sessionPart = "session:"
	targetsPart = "logout_targets"
)

// KEYS: forward key, targets set. ARGV: sessionID, userID, session key prefix.
var registerScript = redis.NewScript(`
local previous = redis.call('GET', KEYS[1])
if previous == ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1])
redis.call('SET', ARGV[3] .. ARGV[1], ARGV[2])
if previous then
	redis.call('DEL', ARGV[3] .. previous)
	redis.call('SADD', KEYS[2], previous)
end
return 1
`)

// KEYS: session key, targets set. ARGV: sessionID, user key prefix.
var unregisterScript = redis.NewScript(`
redis.call('SREM', KEYS[2], ARGV[1])
local user = redis.call('GET', KEYS[1])
if not user then
	return 0
end
redis.call('DEL', KEYS[1])
local forward = ARGV[2] .. user
if redis.call('GET', forward) == ARGV[1] then
	redis.call('DEL', forward)
end
return 1
`)

// Registry implements ports.SessionRegistry on Redis. Instances sharing a
// client address and prefix see the same bindings.
//
// Example:
//
//	client, err := sessionregistry.Connect(ctx, "localhost:6379")
//	if err != nil {
//		return err
//	}
//	registry := sessionregistry.New(client, sessionregistry.DefaultPrefix)
type Registry struct {
	client *redis.Client
	prefix string
}

// New creates a registry storing its keys under prefix.
func New(client *redis.Client, prefix string) *Registry {
	return &Registry{client: client, prefix: prefix}
}

// Connect opens a client for addr and pings it.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		PoolSize:    100,
		DialTimeout: 5 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *Registry) userKey(userID string) string { return r.prefix + userPart + userID }
func (r *Registry) sessionKey(sessionID string) string { return r.prefix + sessionPart + sessionID }
func (r *Registry) targetsKey() string { return r.prefix + targetsPart }

// RegisterLogin binds userID to sessionID and marks the user's previous
// session, if any, as a logout target.
func (r *Registry) RegisterLogin(ctx context.Context, userID, sessionID string) error {
	keys := []string{r.userKey(userID), r.targetsKey()}
	return registerScript.Run(ctx, r.client, keys, sessionID, userID, r.prefix+sessionPart).Err()
}

// RemoveLogoutTarget relies on SREM reporting a removed member exactly once.
func (r *Registry) RemoveLogoutTarget(ctx context.Context, sessionID string) (bool, error) {
	removed, err := r.client.SRem(ctx, r.targetsKey(), sessionID).Result()
	if err != nil {
		return false, err
	}
	return removed == 1, nil
}

// UnregisterBySessionID drops the binding of sessionID and its logout mark.
// The forward entry is kept when it already points to a newer session.
func (r *Registry) UnregisterBySessionID(ctx context.Context, sessionID string) error {
	keys := []string{r.sessionKey(sessionID), r.targetsKey()}
	return unregisterScript.Run(ctx, r.client, keys, sessionID, r.prefix+userPart).Err()
}

// SessionOf returns the session bound to userID.
func (r *Registry) SessionOf(ctx context.Context, userID string) (string, bool, error) {
	return r.get(ctx, r.userKey(userID))
}

// UserOf returns the user bound to sessionID.
func (r *Registry) UserOf(ctx context.Context, sessionID string) (string, bool, error) {
	return r.get(ctx, r.sessionKey(sessionID))
}

func (r *Registry) get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
