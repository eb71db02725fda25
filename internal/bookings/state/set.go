// Package state owns the client-local booking set: the single source of
// truth for validation and display. The set has one logical owner per
// process; the event-delivery path and optimistic-write call sites both
// serialize through it. It may transiently diverge from the remote store
// between an optimistic mutation and its confirming echo.
package state

import (
	"sort"
	"sync"

	"roomly/pkg/model"
)

// Set is a mutex-guarded mapping of booking id to booking.
type Set struct {
	mu    sync.RWMutex
	items map[string]model.Booking
}

func NewSet() *Set {
	return &Set{items: make(map[string]model.Booking)}
}

// Add inserts a booking. It is a no-op when the id is already present, so
// replaying an insert never duplicates an entry.
func (s *Set) Add(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[b.ID]; ok {
		return
	}
	s.items[b.ID] = b
}

// Replace swaps the entry matching b's id and reports whether one existed.
// An absent id means the booking was already removed; a late replace must
// never resurrect it.
func (s *Set) Replace(b model.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[b.ID]; !ok {
		return false
	}
	s.items[b.ID] = b
	return true
}

// Remove deletes the entry by id; a no-op when absent.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *Set) Get(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.items[id]
	return b, ok
}

// ContainsSlot reports whether any entry shares the soft identity key.
func (s *Set) ContainsSlot(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.items {
		if b.SlotKey() == key {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns the bookings ordered by date, start time, then id for a
// stable listing.
func (s *Set) All() []model.Booking {
	s.mu.RLock()
	out := make([]model.Booking, 0, len(s.items))
	for _, b := range s.items {
		out = append(out, b)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ForRoomDate returns the bookings sharing a room and date in start order.
func (s *Set) ForRoomDate(roomID int, date string) []model.Booking {
	s.mu.RLock()
	var out []model.Booking
	for _, b := range s.items {
		if b.RoomID == roomID && b.Date == date {
			out = append(out, b)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// Load replaces the whole set with a query snapshot.
func (s *Set) Load(bookings []model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]model.Booking, len(bookings))
	for _, b := range bookings {
		s.items[b.ID] = b
	}
}
