// Package availability derives the valid start and end time labels for a
// room/date from the set of known bookings.
package availability

import (
	"sort"
	"time"

	"roomly/internal/timegrid"
	"roomly/pkg/model"
)

// EditRef carries the original interval of a booking being edited. Its
// labels are re-admitted to the candidate sets even where they would fail
// the usual filters, so an edit form can always show the booking's own
// current times.
type EditRef struct {
	ID        string
	StartTime string
	EndTime   string
}

// Computer computes candidate time labels from a pool of bookings. Only
// bookings matching RoomID and Date participate; the booking referenced by
// Edit is excluded from overlap checks. Now supplies the wall clock for
// same-day past filtering.
type Computer struct {
	Bookings []model.Booking
	RoomID   int
	Date     string
	Edit     *EditRef
	Now      time.Time
}

// StartTimes returns the grid labels usable as a start time. Labels in the
// past are removed when Date is today, and labels falling inside another
// booking's half-open interval are removed; a label equal to another
// booking's end remains valid (adjacency, not overlap).
func (c Computer) StartTimes() []string {
	others := c.relevant()

	isToday := c.Date == c.Now.Format(timegrid.DateLayout)
	current := ""
	if isToday {
		current = timegrid.Floor(c.Now)
	}

	var out []string
	for slot := range timegrid.StartSlots() {
		if c.Edit != nil && slot == c.Edit.StartTime {
			out = append(out, slot)
			continue
		}
		if isToday && slot < current {
			continue
		}
		if startBlocked(slot, others) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// EndTimes returns the end labels reachable from start: strictly later
// than start, within the maximum span, not past the immediately following
// booking's start, and not landing inside or on another booking except
// exactly on that next booking's start. An end equal to a later booking's
// start that would skip over an intervening booking is rejected, since the
// gap it leaves could never be booked.
func (c Computer) EndTimes(start string) []string {
	if start == "" {
		return nil
	}

	others := c.relevant()
	maxEnd := timegrid.MaxEnd(start)
	next := nextStart(others, start)

	var out []string
	for slot := range timegrid.EndSlots() {
		if slot <= start {
			continue
		}
		if slot > maxEnd {
			continue
		}
		if c.Edit != nil && slot == c.Edit.EndTime && start == c.Edit.StartTime {
			out = append(out, slot)
			continue
		}
		if slot > next {
			continue
		}
		if endBlocked(slot, next, others) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// relevant filters the pool down to bookings sharing the room and date,
// minus the booking being edited, in start order.
func (c Computer) relevant() []model.Booking {
	var out []model.Booking
	for _, b := range c.Bookings {
		if b.RoomID != c.RoomID || b.Date != c.Date {
			continue
		}
		if c.Edit != nil && c.Edit.ID != "" && b.ID == c.Edit.ID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func startBlocked(slot string, others []model.Booking) bool {
	for _, b := range others {
		if slot >= b.StartTime && slot < b.EndTime {
			return true
		}
	}
	return false
}

func endBlocked(slot, next string, others []model.Booking) bool {
	for _, b := range others {
		if slot > b.StartTime && slot < b.EndTime {
			return true
		}
		if slot == b.StartTime && b.StartTime != next {
			return true
		}
	}
	return false
}

// nextStart is the earliest other booking's start strictly after the
// candidate start, defaulting to the end-of-day sentinel.
func nextStart(others []model.Booking, after string) string {
	for _, b := range others {
		if b.StartTime > after {
			return b.StartTime
		}
	}
	return timegrid.DayEnd
}
