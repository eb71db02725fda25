package availability

import "roomly/pkg/model"

// Overlaps reports whether two half-open label intervals intersect. A
// shared boundary instant is not an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(bStart >= aEnd || bEnd <= aStart)
}

// IsAvailable reports whether candidate conflicts with none of the
// existing bookings. Only bookings sharing the candidate's room and date
// are considered. Used as a pre-submit check and again immediately before
// commit; it narrows the submission race window but cannot eliminate it.
func IsAvailable(existing []model.Booking, candidate *model.Booking) bool {
	for _, b := range existing {
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, candidate.StartTime, candidate.EndTime) {
			return false
		}
	}
	return true
}
