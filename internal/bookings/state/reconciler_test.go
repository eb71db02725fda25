package state

import (
	"testing"

	"roomly/pkg/model"
)

func added(b model.Booking) model.ChangeEvent {
	return model.ChangeEvent{Type: model.ChangeAdded, Booking: b}
}

func modified(b model.Booking) model.ChangeEvent {
	return model.ChangeEvent{Type: model.ChangeModified, Booking: b}
}

func removed(id string) model.ChangeEvent {
	return model.ChangeEvent{Type: model.ChangeRemoved, Booking: model.Booking{ID: id}}
}

func TestReconciler_AddedTwiceIsIdempotent(t *testing.T) {
	r := NewReconciler(NewSet())
	b := entry("a", 1, "2025-06-01", "09:00", "10:00")

	r.Apply(added(b))
	r.Apply(added(b))

	if r.Set().Len() != 1 {
		t.Fatalf("expected 1 entry after duplicate delivery, got %d", r.Set().Len())
	}
}

func TestReconciler_AddedSuppressedBySlotKey(t *testing.T) {
	// An echo of a local optimistic insert arrives under the store id while
	// the same logical booking already sits in the set: same slot, any id.
	r := NewReconciler(NewSet())
	local := entry("local-1", 1, "2025-06-01", "09:00", "10:00")
	echo := entry("store-9", 1, "2025-06-01", "09:00", "10:00")

	r.Apply(added(local))
	r.Apply(added(echo))

	if r.Set().Len() != 1 {
		t.Fatalf("expected the echo to be suppressed, got %d entries", r.Set().Len())
	}
	if _, ok := r.Set().Get("local-1"); !ok {
		t.Error("the first-applied entry must survive")
	}
}

func TestReconciler_ModifiedReplacesExisting(t *testing.T) {
	r := NewReconciler(NewSet())
	r.Apply(added(entry("a", 1, "2025-06-01", "09:00", "10:00")))

	moved := entry("a", 1, "2025-06-01", "11:00", "12:00")
	r.Apply(modified(moved))

	got, ok := r.Set().Get("a")
	if !ok {
		t.Fatal("expected entry to remain present")
	}
	if got.StartTime != "11:00" || got.EndTime != "12:00" {
		t.Errorf("expected replaced interval 11:00-12:00, got %s-%s", got.StartTime, got.EndTime)
	}
}

func TestReconciler_ModifiedUnknownIDIgnored(t *testing.T) {
	r := NewReconciler(NewSet())

	r.Apply(modified(entry("ghost", 1, "2025-06-01", "09:00", "10:00")))

	if r.Set().Len() != 0 {
		t.Error("a stale modified event must never resurrect a removed booking")
	}
}

func TestReconciler_RemovedAbsentIsNoop(t *testing.T) {
	r := NewReconciler(NewSet())
	r.Apply(added(entry("a", 1, "2025-06-01", "09:00", "10:00")))

	r.Apply(removed("ghost"))
	r.Apply(removed("a"))
	r.Apply(removed("a"))

	if r.Set().Len() != 0 {
		t.Errorf("expected empty set, got %d entries", r.Set().Len())
	}
}

func TestReconciler_RemoveThenLateModified(t *testing.T) {
	r := NewReconciler(NewSet())
	r.Apply(added(entry("a", 1, "2025-06-01", "09:00", "10:00")))
	r.Apply(removed("a"))

	// late event referencing already-removed state
	r.Apply(modified(entry("a", 1, "2025-06-01", "11:00", "12:00")))

	if r.Set().Len() != 0 {
		t.Error("removal must not be undone by a late modified event")
	}
}

func TestReconciler_DistinctIDsCommute(t *testing.T) {
	a := entry("a", 1, "2025-06-01", "09:00", "10:00")
	b := entry("b", 1, "2025-06-01", "10:00", "11:00")

	r1 := NewReconciler(NewSet())
	r1.Apply(added(a))
	r1.Apply(added(b))

	r2 := NewReconciler(NewSet())
	r2.Apply(added(b))
	r2.Apply(added(a))

	if r1.Set().Len() != 2 || r2.Set().Len() != 2 {
		t.Fatalf("expected both orders to yield 2 entries, got %d and %d", r1.Set().Len(), r2.Set().Len())
	}
}
