package kv

import (
	"context"
	"path/filepath"
	"testing"
)

// TestSQLiteRoundTrip verifies put/get/delete against a file-backed
// sqlite store.
func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent with nil error", ok, err)
	}

	if err := s.Put(ctx, "a", "1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := s.Get(ctx, "a")
	if err != nil || !ok || v != "1" {
		t.Fatalf("Get(a) = %q ok=%v err=%v, want \"1\"", v, ok, err)
	}

	// Upsert keeps a single row per key
	if err := s.Put(ctx, "a", "2"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	v, _, _ = s.Get(ctx, "a")
	if v != "2" {
		t.Errorf("after overwrite Get(a) = %q, want \"2\"", v)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("key still present after Delete")
	}
}

// TestSQLitePersistsAcrossReopen verifies data written through one
// handle is visible after closing and reopening the same file.
func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Put(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("after reopen Get(k) = %q ok=%v err=%v, want \"v\"", v, ok, err)
	}
}

// TestOpenDriverSelection verifies Open dispatches on the driver name
// and rejects unknown drivers.
func TestOpenDriverSelection(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, DriverMemory, "", "")
	if err != nil {
		t.Fatalf("Open(memory): %v", err)
	}
	if _, isMem := s.(*Memory); !isMem {
		t.Errorf("Open(memory) returned %T, want *Memory", s)
	}
	s.Close()

	if _, err := Open(ctx, "bogus", "", ""); err == nil {
		t.Error("Open(bogus) succeeded, want error")
	}
}
