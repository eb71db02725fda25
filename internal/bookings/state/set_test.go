package state

import (
	"sync"
	"testing"

	"roomly/pkg/model"
)

func entry(id string, roomID int, date, start, end string) model.Booking {
	return model.Booking{
		ID:        id,
		RoomID:    roomID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Name:      "Dana",
		OwnerID:   "owner-1",
	}
}

func TestSet_AddIsIdempotentByID(t *testing.T) {
	s := NewSet()
	b := entry("a", 1, "2025-06-01", "09:00", "10:00")

	s.Add(b)
	s.Add(b)

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestSet_ReplaceMissingIsNoop(t *testing.T) {
	s := NewSet()

	if s.Replace(entry("ghost", 1, "2025-06-01", "09:00", "10:00")) {
		t.Error("Replace of an absent id must report false")
	}
	if s.Len() != 0 {
		t.Errorf("Replace of an absent id must not insert, got %d entries", s.Len())
	}
}

func TestSet_RemoveAbsentIsNoop(t *testing.T) {
	s := NewSet()
	s.Add(entry("a", 1, "2025-06-01", "09:00", "10:00"))

	s.Remove("ghost")

	if s.Len() != 1 {
		t.Errorf("removing an absent id must leave the set unchanged, got %d entries", s.Len())
	}
}

func TestSet_ForRoomDate(t *testing.T) {
	s := NewSet()
	s.Add(entry("a", 1, "2025-06-01", "10:00", "11:00"))
	s.Add(entry("b", 1, "2025-06-01", "09:00", "09:30"))
	s.Add(entry("c", 2, "2025-06-01", "09:00", "09:30"))
	s.Add(entry("d", 1, "2025-06-02", "09:00", "09:30"))

	got := s.ForRoomDate(1, "2025-06-01")
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings for room 1, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("expected start order b,a; got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestSet_Load(t *testing.T) {
	s := NewSet()
	s.Add(entry("old", 1, "2025-06-01", "09:00", "10:00"))

	s.Load([]model.Booking{
		entry("a", 1, "2025-06-01", "09:00", "10:00"),
		entry("b", 1, "2025-06-01", "10:00", "11:00"),
	})

	if s.Len() != 2 {
		t.Fatalf("expected snapshot of 2 entries, got %d", s.Len())
	}
	if _, ok := s.Get("old"); ok {
		t.Error("Load must drop entries not present in the snapshot")
	}
}

func TestSet_ConcurrentAccess(t *testing.T) {
	s := NewSet()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			s.Add(entry(id, 1, "2025-06-01", "09:00", "10:00"))
		}(string(rune('a' + i)))
		go func() {
			defer wg.Done()
			s.ForRoomDate(1, "2025-06-01")
			s.Len()
		}()
	}
	wg.Wait()

	if s.Len() != 8 {
		t.Errorf("expected 8 entries, got %d", s.Len())
	}
}
