package traveltales

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/traveltales/store"
)

// Repository loads and saves whole per-user collections. There are no
// partial updates: callers read, transform, and write back the entire
// collection, so every stored value is a complete, consistent snapshot.
type Repository struct {
	kv store.KV
}

// NewRepository returns a repository over kv.
func NewRepository(kv store.KV) *Repository {
	return &Repository{kv: kv}
}

// Trips returns the trip collection of a user.
//
// The first read for a user with no stored key seeds, persists and returns
// the built-in samples. The presence check means the seed happens at most
// once: a user who deleted everything holds an empty, but present,
// collection. The store cannot distinguish "never initialized" from "user
// deleted everything" when the key itself is removed.
func (r *Repository) Trips(ctx context.Context, userID string) ([]Trip, error) {
	value, ok, err := r.kv.Get(ctx, store.TripsKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := SampleTrips()
		if err := r.SaveTrips(ctx, userID, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	var trips []Trip
	if err := json.Unmarshal(value, &trips); err != nil {
		return nil, fmt.Errorf("corrupt trip collection for user %q: %w", userID, err)
	}
	return trips, nil
}

// SaveTrips replaces the whole trip collection of a user.
func (r *Repository) SaveTrips(ctx context.Context, userID string, trips []Trip) error {
	value, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encode trip collection: %w", err)
	}
	return r.kv.Set(ctx, store.TripsKey(userID), value)
}

// PlannedTrips returns the planned-trip collection of a user, lazily seeded
// like Trips.
func (r *Repository) PlannedTrips(ctx context.Context, userID string) ([]PlannedTrip, error) {
	value, ok, err := r.kv.Get(ctx, store.PlansKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := SamplePlans()
		if err := r.SavePlannedTrips(ctx, userID, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	var plans []PlannedTrip
	if err := json.Unmarshal(value, &plans); err != nil {
		return nil, fmt.Errorf("corrupt plan collection for user %q: %w", userID, err)
	}
	return plans, nil
}

// SavePlannedTrips replaces the whole planned-trip collection of a user.
func (r *Repository) SavePlannedTrips(ctx context.Context, userID string, plans []PlannedTrip) error {
	value, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("encode plan collection: %w", err)
	}
	return r.kv.Set(ctx, store.PlansKey(userID), value)
}
