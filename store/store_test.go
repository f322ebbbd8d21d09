package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// openBackends returns one store per implementation, all empty.
func openBackends(t *testing.T) map[string]KV {
	t.Helper()
	sq, err := Open(filepath.Join(t.TempDir(), "tales.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]KV{
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestGetAbsent(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := kv.Get(context.Background(), "nope")
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if ok || value != nil {
				t.Errorf("Get(absent) = (%q, %v), want absent", value, ok)
			}
		})
	}
}

func TestSetGetRemove(t *testing.T) {
	ctx := context.Background()
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			key := TripsKey("u1")
			if err := kv.Set(ctx, key, []byte(`["first"]`)); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			// A second Set replaces the whole value.
			if err := kv.Set(ctx, key, []byte(`["second"]`)); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			value, ok, err := kv.Get(ctx, key)
			if err != nil || !ok {
				t.Fatalf("Get() = (%v, %v), want present", err, ok)
			}
			if string(value) != `["second"]` {
				t.Errorf("Get() = %q, want %q", value, `["second"]`)
			}

			if err := kv.Remove(ctx, key); err != nil {
				t.Fatalf("Remove() failed: %v", err)
			}
			if _, ok, _ := kv.Get(ctx, key); ok {
				t.Errorf("key still present after Remove()")
			}
			// Removing an absent key is not an error.
			if err := kv.Remove(ctx, key); err != nil {
				t.Errorf("Remove(absent) failed: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tales.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := first.Set(ctx, UsersKey, []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()
	value, ok, err := second.Get(ctx, UsersKey)
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = (%v, %v), want present", err, ok)
	}
	if string(value) != `[]` {
		t.Errorf("Get() = %q, want %q", value, `[]`)
	}
}

func TestLatencyHonorsContext(t *testing.T) {
	kv := NewMemory(WithLatency(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := kv.Get(ctx, "k"); err == nil {
		t.Errorf("Get() with canceled context = nil error, want context error")
	}
}

func TestKeys(t *testing.T) {
	if got := TripsKey("42"); got != "trips-42" {
		t.Errorf("TripsKey() = %q, want %q", got, "trips-42")
	}
	if got := PlansKey("42"); got != "plans-42" {
		t.Errorf("PlansKey() = %q, want %q", got, "plans-42")
	}
}
