package workout

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestInsertUnique verifies that names are appended once and re-inserts
// are reported as no-ops.
func TestInsertUnique(t *testing.T) {
	list, changed := insertUnique(nil, "bench_press")
	if !changed || len(list) != 1 || list[0] != "bench_press" {
		t.Fatalf("insertUnique into empty = %v changed=%v, want [bench_press] true", list, changed)
	}

	list, changed = insertUnique(list, "squat")
	if !changed || len(list) != 2 {
		t.Fatalf("insertUnique(squat) = %v changed=%v, want 2 entries true", list, changed)
	}

	list, changed = insertUnique(list, "bench_press")
	if changed || len(list) != 2 {
		t.Errorf("re-insert = %v changed=%v, want unchanged false", list, changed)
	}
}

// TestRemoveByValue verifies removal of present and absent names.
func TestRemoveByValue(t *testing.T) {
	list := []string{"a", "b", "c"}

	got := removeByValue(list, "b")
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("removeByValue(b) = %v, want [a c]", got)
	}

	got = removeByValue(list, "zzz")
	if len(got) != 3 {
		t.Errorf("removeByValue(absent) = %v, want all 3 entries", got)
	}
}

// TestInsertPointerOrdering verifies the index is fully re-sorted on
// each insert: descending by date, then by created_at, both as strings.
func TestInsertPointerOrdering(t *testing.T) {
	var list []models.SessionPointer

	list = insertPointer(list, models.SessionPointer{SessionID: "s1", Date: "2025-01-03", CreatedAt: "2025-01-03T10:00:00Z"})
	list = insertPointer(list, models.SessionPointer{SessionID: "s2", Date: "2025-01-01", CreatedAt: "2025-01-01T10:00:00Z"})
	list = insertPointer(list, models.SessionPointer{SessionID: "s3", Date: "2025-01-05", CreatedAt: "2025-01-05T10:00:00Z"})
	list = insertPointer(list, models.SessionPointer{SessionID: "s4", Date: "2025-01-03", CreatedAt: "2025-01-03T18:30:00Z"})

	want := []string{"s3", "s4", "s1", "s2"}
	if len(list) != len(want) {
		t.Fatalf("index has %d entries, want %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].SessionID != id {
			t.Errorf("index[%d] = %s, want %s (full order %v)", i, list[i].SessionID, id, list)
		}
	}
}
