package availability

import (
	"testing"

	"roomly/pkg/model"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "10:00", "09:15", "09:45", true},
		{"straddles start", "09:00", "10:00", "08:30", "09:30", true},
		{"straddles end", "09:00", "10:00", "09:30", "10:30", true},
		{"adjacent after", "09:00", "10:00", "10:00", "11:00", false},
		{"adjacent before", "09:00", "10:00", "08:00", "09:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	a := booking("a", 1, testDate, "09:00", "10:00")
	existing := []model.Booking{a}

	adjacent := booking("", 1, testDate, "10:00", "11:00")
	if !IsAvailable(existing, &adjacent) {
		t.Error("[10:00,11:00) shares only a boundary with [09:00,10:00) and must be available")
	}

	overlapping := booking("", 1, testDate, "09:30", "10:30")
	if IsAvailable(existing, &overlapping) {
		t.Error("[09:30,10:30) overlaps [09:00,10:00) and must be unavailable")
	}

	otherRoom := booking("", 2, testDate, "09:30", "10:30")
	if !IsAvailable(existing, &otherRoom) {
		t.Error("a different room never conflicts")
	}

	otherDate := booking("", 1, "2025-06-02", "09:30", "10:30")
	if !IsAvailable(existing, &otherDate) {
		t.Error("a different date never conflicts")
	}
}

func TestIsAvailable_DayEndSentinel(t *testing.T) {
	last := booking("z", 1, testDate, "22:00", "23:59")
	candidate := booking("", 1, testDate, "21:00", "22:00")

	if !IsAvailable([]model.Booking{last}, &candidate) {
		t.Error("an interval ending at the sentinel booking's start must be available")
	}

	clashing := booking("", 1, testDate, "23:00", "23:59")
	if IsAvailable([]model.Booking{last}, &clashing) {
		t.Error("two sentinel-ended intervals over the same evening must conflict")
	}
}
