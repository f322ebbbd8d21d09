package traveltales

import (
	"context"
	"reflect"
	"testing"

	"github.com/etnz/traveltales/store"
)

func TestTripsLazySeed(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewRepository(kv)

	trips, err := repo.Trips(ctx, "u1")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	if !reflect.DeepEqual(trips, SampleTrips()) {
		t.Errorf("first Trips() read did not return the samples")
	}
	// The seed is persisted, not just returned.
	if _, ok, _ := kv.Get(ctx, store.TripsKey("u1")); !ok {
		t.Errorf("samples not persisted on first read")
	}
}

func TestTripsIdempotentRead(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory())

	first, err := repo.Trips(ctx, "u1")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	second, err := repo.Trips(ctx, "u1")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two reads without mutation differ:\n%+v\n%+v", first, second)
	}
}

func TestTripsEmptyCollectionIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory())

	// A user who deleted everything holds an empty, but present, collection.
	if err := repo.SaveTrips(ctx, "u1", []Trip{}); err != nil {
		t.Fatalf("SaveTrips() failed: %v", err)
	}
	trips, err := repo.Trips(ctx, "u1")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	if len(trips) != 0 {
		t.Errorf("empty collection reseeded to %d trips, want 0", len(trips))
	}
}

func TestSaveTripsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory())

	saved := SampleTrips()[:1]
	if err := repo.SaveTrips(ctx, "u1", saved); err != nil {
		t.Fatalf("SaveTrips() failed: %v", err)
	}
	got, err := repo.Trips(ctx, "u1")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, saved)
	}
}

func TestPlannedTripsLazySeed(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory())

	plans, err := repo.PlannedTrips(ctx, "u1")
	if err != nil {
		t.Fatalf("PlannedTrips() failed: %v", err)
	}
	if !reflect.DeepEqual(plans, SamplePlans()) {
		t.Errorf("first PlannedTrips() read did not return the samples")
	}
}

func TestCollectionsAreNamespacedByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory())

	if err := repo.SaveTrips(ctx, "u1", []Trip{}); err != nil {
		t.Fatalf("SaveTrips() failed: %v", err)
	}
	// u2 was never initialized: it still gets the samples.
	trips, err := repo.Trips(ctx, "u2")
	if err != nil {
		t.Fatalf("Trips() failed: %v", err)
	}
	if len(trips) == 0 {
		t.Errorf("u2 read u1's empty collection, want its own samples")
	}
}
