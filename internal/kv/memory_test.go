package kv

import (
	"context"
	"testing"
)

// TestMemoryRoundTrip verifies put/get/overwrite/delete against the
// in-memory store, including the ok=false contract for absent keys.
func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent with nil error", ok, err)
	}

	if err := m.Put(ctx, "a", "1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := m.Get(ctx, "a")
	if err != nil || !ok || v != "1" {
		t.Fatalf("Get(a) = %q ok=%v err=%v, want \"1\"", v, ok, err)
	}

	if err := m.Put(ctx, "a", "2"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	v, _, _ = m.Get(ctx, "a")
	if v != "2" {
		t.Errorf("after overwrite Get(a) = %q, want \"2\"", v)
	}

	if err := m.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting an absent key is a no-op, not an error
	if err := m.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

// TestMemorySnapshot verifies Snapshot returns a copy that later writes
// do not mutate.
func TestMemorySnapshot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Put(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	snap := m.Snapshot()
	if len(snap) != 1 || snap["k"] != "v" {
		t.Fatalf("Snapshot = %v, want map[k:v]", snap)
	}

	if err := m.Put(ctx, "k2", "v2"); err != nil {
		t.Fatal(err)
	}
	if _, present := snap["k2"]; present {
		t.Error("snapshot mutated by later Put")
	}
}
