// Package timegrid generates the canonical discrete time grids for one
// calendar day. Labels are "HH:MM" strings at 15-minute resolution, which
// compare correctly under plain string ordering; the DayEnd sentinel sorts
// after every grid label of the same day.
package timegrid

import (
	"fmt"
	"iter"
	"time"
)

const (
	// SlotMinutes is the grid resolution.
	SlotMinutes = 15

	// SlotsPerDay is the number of start labels in a full day.
	SlotsPerDay = 24 * 60 / SlotMinutes

	// DayEnd is the sentinel end label standing for the last instant of
	// the day. It is not on the grid and is only valid as an end time.
	DayEnd = "23:59"

	// MaxSpanHours caps a single booking's duration.
	MaxSpanHours = 4

	// DateLayout is the calendar-day partition format.
	DateLayout = "2006-01-02"
)

// StartSlots yields every start label of the day, 00:00 through 23:45.
// The sequence is restartable: each range starts over from midnight.
func StartSlots() iter.Seq[string] {
	return func(yield func(string) bool) {
		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute += SlotMinutes {
				if !yield(Label(hour, minute)) {
					return
				}
			}
		}
	}
}

// EndSlots yields every valid end label: the start grid without 00:00,
// which cannot end a same-day interval, plus the DayEnd sentinel.
func EndSlots() iter.Seq[string] {
	return func(yield func(string) bool) {
		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute += SlotMinutes {
				if hour == 0 && minute == 0 {
					continue
				}
				if !yield(Label(hour, minute)) {
					return
				}
			}
		}
		yield(DayEnd)
	}
}

// Label formats an hour/minute pair as a grid label.
func Label(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Floor returns the grid label for t with minutes floored to the slot
// resolution, e.g. 14:38 -> "14:30".
func Floor(t time.Time) string {
	return Label(t.Hour(), t.Minute()/SlotMinutes*SlotMinutes)
}

// ValidStart reports whether label is a well-formed grid start label.
func ValidStart(label string) bool {
	hour, minute, ok := parse(label)
	return ok && hour < 24 && minute%SlotMinutes == 0
}

// ValidEnd reports whether label is a well-formed end label: any grid
// label except 00:00, or the DayEnd sentinel.
func ValidEnd(label string) bool {
	if label == DayEnd {
		return true
	}
	return ValidStart(label) && label != "00:00"
}

// MaxEnd returns the latest permitted end label for an interval starting
// at start: four hours later, clamped to DayEnd when that would cross
// midnight.
func MaxEnd(start string) string {
	hour, minute, ok := parse(start)
	if !ok {
		return DayEnd
	}
	hour += MaxSpanHours
	if hour >= 24 {
		return DayEnd
	}
	return Label(hour, minute)
}

func parse(label string) (hour, minute int, ok bool) {
	if len(label) != 5 || label[2] != ':' {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(label, "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, false
	}
	return hour, minute, hour >= 0 && hour < 24 && minute >= 0 && minute < 60
}
