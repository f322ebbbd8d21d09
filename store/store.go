// Package store provides the persistent key-value layer underlying all
// per-user data. Values are opaque serialized blobs, and an absent key is a
// valid "no data yet" state, never an error.
//
// Two implementations are provided: a SQLite-backed store for the
// application, and an in-memory store for tests. Both can emulate network
// latency, so that callers behave like clients of a remote service.
package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// KV is the contract every store implementation satisfies. Each write
// replaces the whole value atomically; there are no transactions spanning
// multiple keys.
type KV interface {
	// Get returns the value for key, and whether the key was present.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Well-known keys of the global registry and session pointer.
const (
	// UsersKey holds the ordered sequence of all registered users.
	UsersKey = "users"
	// SessionKey holds the currently signed-in user, if any.
	SessionKey = "currentUser"
)

// TripsKey returns the key holding the trip collection of a user.
func TripsKey(userID string) string { return "trips-" + userID }

// PlansKey returns the key holding the planned-trip collection of a user.
func PlansKey(userID string) string { return "plans-" + userID }

// Option configures a store implementation.
type Option func(*options)

// WithLatency makes every store operation pause for d before resolving,
// emulating a network round trip. Zero disables the pause.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

// WithLogger sets the logger used to trace store operations.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

type options struct {
	latency time.Duration
	log     zerolog.Logger
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// pause waits for the configured artificial latency, honoring ctx.
func (o options) pause(ctx context.Context) error {
	if o.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(o.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
