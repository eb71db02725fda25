package timegrid

import (
	"slices"
	"testing"
	"time"
)

func TestStartSlots(t *testing.T) {
	slots := slices.Collect(StartSlots())

	if len(slots) != SlotsPerDay {
		t.Fatalf("expected %d start slots, got %d", SlotsPerDay, len(slots))
	}
	if slots[0] != "00:00" {
		t.Errorf("expected first slot 00:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "23:45" {
		t.Errorf("expected last slot 23:45, got %s", slots[len(slots)-1])
	}
	if !slices.IsSorted(slots) {
		t.Error("start slots must be in ascending label order")
	}
}

func TestStartSlots_Restartable(t *testing.T) {
	seq := StartSlots()

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	if !slices.Equal(first, second) {
		t.Error("ranging the sequence twice must yield identical slots")
	}
}

func TestEndSlots(t *testing.T) {
	slots := slices.Collect(EndSlots())

	if len(slots) != SlotsPerDay {
		t.Fatalf("expected %d end slots, got %d", SlotsPerDay, len(slots))
	}
	if slots[0] != "00:15" {
		t.Errorf("expected first end slot 00:15, got %s", slots[0])
	}
	if slots[len(slots)-1] != DayEnd {
		t.Errorf("expected trailing sentinel %s, got %s", DayEnd, slots[len(slots)-1])
	}
	if slices.Contains(slots, "00:00") {
		t.Error("00:00 is not a valid end label")
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "00:00"},
		{9, 7, "09:00"},
		{14, 38, "14:30"},
		{14, 45, "14:45"},
		{23, 59, "23:45"},
	}

	for _, tt := range tests {
		now := time.Date(2025, 6, 1, tt.hour, tt.minute, 30, 0, time.Local)
		if got := Floor(now); got != tt.want {
			t.Errorf("Floor(%02d:%02d) = %s, want %s", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestMaxEnd(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"08:00", "12:00"},
		{"09:30", "13:30"},
		{"19:45", "23:45"},
		{"20:00", DayEnd},
		{"20:15", DayEnd},
		{"23:45", DayEnd},
	}

	for _, tt := range tests {
		if got := MaxEnd(tt.start); got != tt.want {
			t.Errorf("MaxEnd(%s) = %s, want %s", tt.start, got, tt.want)
		}
	}
}

func TestValidStart(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:45"}
	invalid := []string{"", "9:15", "09:10", "24:00", "23:59", "09-15"}

	for _, label := range valid {
		if !ValidStart(label) {
			t.Errorf("ValidStart(%q) = false, want true", label)
		}
	}
	for _, label := range invalid {
		if ValidStart(label) {
			t.Errorf("ValidStart(%q) = true, want false", label)
		}
	}
}

func TestValidEnd(t *testing.T) {
	valid := []string{"00:15", "12:00", "23:45", DayEnd}
	invalid := []string{"00:00", "23:58", "24:00", ""}

	for _, label := range valid {
		if !ValidEnd(label) {
			t.Errorf("ValidEnd(%q) = false, want true", label)
		}
	}
	for _, label := range invalid {
		if ValidEnd(label) {
			t.Errorf("ValidEnd(%q) = true, want false", label)
		}
	}
}
