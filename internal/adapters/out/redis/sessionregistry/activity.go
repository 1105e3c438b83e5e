package sessionregistry

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// expireBatch bounds the work of one expiry script run.
	expireBatch = 100
	opTimeout   = 2 * time.Second
)

// KEYS: activity set. ARGV: sessionID.
//
// Scores come from the Redis clock, so instances with skewed clocks agree on
// idleness.
var touchScript = redis.NewScript(`
local now = redis.call('TIME')
local ms = tonumber(now[1]) * 1000 + math.floor(tonumber(now[2]) / 1000)
redis.call('ZADD', KEYS[1], ms, ARGV[1])
return ms
`)

// KEYS: activity set, targets set. ARGV: idle timeout in ms, batch size,
// session key prefix, user key prefix.
//
// Selection and removal run in one script: a touch from any instance either
// lands before it, and the session is not idle, or after it, on a session
// that is already gone.
var expireScript = redis.NewScript(`
local now = redis.call('TIME')
local cutoff = tonumber(now[1]) * 1000 + math.floor(tonumber(now[2]) / 1000) - tonumber(ARGV[1])
local idle = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', cutoff, 'LIMIT', 0, tonumber(ARGV[2]))
for _, session in ipairs(idle) do
	redis.call('ZREM', KEYS[1], session)
	redis.call('SREM', KEYS[2], session)
	local sessionKey = ARGV[3] .. session
	local user = redis.call('GET', sessionKey)
	if user then
		redis.call('DEL', sessionKey)
		local forward = ARGV[4] .. user
		if redis.call('GET', forward) == session then
			redis.call('DEL', forward)
		end
	end
end
return idle
`)

// Activity implements ports.SessionActivity on a Redis sorted set shared by
// every instance, scored by the time of the last touch. DeleteExpired
// unregisters sessions no instance has touched within the idle timeout.
//
// Example:
//
//	registry := sessionregistry.New(client, sessionregistry.DefaultPrefix)
//	activity := sessionregistry.NewActivity(client, sessionregistry.DefaultPrefix, 30*time.Minute, logger)
//	activity.Touch("s1")      // on instance A
//	activity.DeleteExpired()  // on instance B, keeps s1
type Activity struct {
	client *redis.Client
	// prefix is shared with the Registry whose bindings are expired
	prefix string
	// idleTimeout is measured against the Redis server clock
	idleTimeout time.Duration
	logger      *slog.Logger
}

// NewActivity creates the tracker for bindings stored under prefix, the same
// prefix the Registry uses.
func NewActivity(client *redis.Client, prefix string, idleTimeout time.Duration, logger *slog.Logger) *Activity {
	return &Activity{
		client:      client,
		prefix:      prefix,
		idleTimeout: idleTimeout,
		logger:      logger.With("component", "session-activity"),
	}
}

func (a *Activity) activityKey() string { return a.prefix + "activity" }

// Touch records activity of sessionID now. Failures are logged; a missed
// touch at worst shortens the session.
func (a *Activity) Touch(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := touchScript.Run(ctx, a.client, []string{a.activityKey()}, sessionID).Err(); err != nil {
		a.logger.Error("failed to record session activity", "session", sessionID, "error", err)
	}
}

// Forget stops tracking sessionID without unregistering it.
func (a *Activity) Forget(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := a.client.ZRem(ctx, a.activityKey(), sessionID).Err(); err != nil {
		a.logger.Error("failed to forget session activity", "session", sessionID, "error", err)
	}
}

// DeleteExpired unregisters every session idle for longer than the timeout,
// in batches, until none is left.
func (a *Activity) DeleteExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	keys := []string{a.activityKey(), a.prefix + targetsPart}
	for {
		expired, err := expireScript.Run(ctx, a.client, keys,
			a.idleTimeout.Milliseconds(), expireBatch, a.prefix+sessionPart, a.prefix+userPart).StringSlice()
		if err != nil {
			a.logger.Error("failed to expire idle sessions", "error", err)
			return
		}
		for _, sessionID := range expired {
			a.logger.Info("idle session unregistered", "session", sessionID)
		}
		if len(expired) < expireBatch {
			return
		}
	}
}

// Len returns the number of tracked sessions.
func (a *Activity) Len(ctx context.Context) (int64, error) {
	return a.client.ZCard(ctx, a.activityKey()).Result()
}
