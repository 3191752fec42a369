package redisbus

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// One set per instance, members are lowercase player names. The TTL on the
// key is the whole crash-recovery story: a crashed instance stops
// refreshing and its set lapses on its own.
const (
	onlineKeyPrefix = "chatrelay:online:"
	scanCount       = 100
)

// Registry is this instance's slice of the shared presence state. Writes
// are fire-and-forget: losing one is tolerated because the next heartbeat
// or explicit call supersedes it, and every operation degrades to a no-op
// (or false) when the transport is down.
type Registry struct {
	log       *slog.Logger
	client    *redis.Client
	instance  string
	connected func() bool
}

func NewRegistry(log *slog.Logger, bus *Bus, instance string) *Registry {
	return &Registry{
		log:       log,
		client:    bus.Client(),
		instance:  instance,
		connected: bus.Connected,
	}
}

func (r *Registry) key() string {
	return onlineKeyPrefix + r.instance
}

// Register adds a player to this instance's presence set. Idempotent.
func (r *Registry) Register(ctx context.Context, name string) {
	if !r.connected() {
		return
	}
	if err := r.client.SAdd(ctx, r.key(), strings.ToLower(name)).Err(); err != nil {
		r.log.Warn("Failed to register player", "name", name, "err", err)
	}
}

// Unregister removes a player from this instance's presence set.
// Idempotent; a no-op if the member is absent.
func (r *Registry) Unregister(ctx context.Context, name string) {
	if !r.connected() {
		return
	}
	if err := r.client.SRem(ctx, r.key(), strings.ToLower(name)).Err(); err != nil {
		r.log.Warn("Failed to unregister player", "name", name, "err", err)
	}
}

// ExistsAnywhere walks every instance's presence set with a cursor-based
// SCAN and tests membership per key, short-circuiting on the first hit.
// The instance key space is unbounded and changes under us; SCAN keeps
// this from ever loading it whole or blocking the server.
func (r *Registry) ExistsAnywhere(ctx context.Context, name string) bool {
	if !r.connected() {
		return false
	}
	lower := strings.ToLower(name)

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, onlineKeyPrefix+"*", scanCount).Result()
		if err != nil {
			r.log.Warn("Presence scan failed", "err", err)
			return false
		}
		for _, key := range keys {
			member, err := r.client.SIsMember(ctx, key, lower).Result()
			if err != nil {
				r.log.Warn("Presence membership check failed", "key", key, "err", err)
				return false
			}
			if member {
				return true
			}
		}
		if next == 0 {
			return false
		}
		cursor = next
	}
}

// RefreshHeartbeat pushes this instance's set expiry ttl into the future.
// Must be called strictly more often than ttl elapses.
func (r *Registry) RefreshHeartbeat(ctx context.Context, ttl time.Duration) {
	if !r.connected() {
		return
	}
	if err := r.client.Expire(ctx, r.key(), ttl).Err(); err != nil {
		r.log.Warn("Failed to refresh presence heartbeat", "err", err)
	}
}

// Cleanup deletes the whole set so a graceful exit does not linger for a
// full TTL.
func (r *Registry) Cleanup(ctx context.Context) {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		r.log.Warn("Failed to cleanup presence set", "err", err)
	}
}
