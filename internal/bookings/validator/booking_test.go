package validator

import (
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func validBooking() *model.Booking {
	return &model.Booking{
		RoomID:    1,
		Date:      "2025-06-01",
		StartTime: "09:00",
		EndTime:   "10:30",
		Name:      "Dana Levi",
		Company:   "Acme",
		OwnerID:   "owner-1",
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := newTestValidator()

	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("expected valid booking, got %v", err)
	}
}

func TestValidate_SentinelEnd(t *testing.T) {
	v := newTestValidator()

	b := validBooking()
	b.StartTime = "22:00"
	b.EndTime = "23:59"

	if err := v.Validate(b); err != nil {
		t.Errorf("the end-of-day sentinel must be a valid end, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"missing room", func(b *model.Booking) { b.RoomID = 0 }},
		{"bad date format", func(b *model.Booking) { b.Date = "06/01/2025" }},
		{"missing start", func(b *model.Booking) { b.StartTime = "" }},
		{"off-grid start", func(b *model.Booking) { b.StartTime = "09:10" }},
		{"midnight end", func(b *model.Booking) { b.EndTime = "00:00" }},
		{"off-grid end", func(b *model.Booking) { b.EndTime = "10:37" }},
		{"end equals start", func(b *model.Booking) { b.EndTime = b.StartTime }},
		{"end before start", func(b *model.Booking) { b.StartTime = "11:00"; b.EndTime = "10:00" }},
		{"missing name", func(b *model.Booking) { b.Name = "" }},
		{"single-char name", func(b *model.Booking) { b.Name = "D" }},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)
			if err := v.Validate(b); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidatePatch(&model.BookingPatch{StartTime: "11:00"}); err != nil {
		t.Errorf("partial patch with one valid field must pass, got %v", err)
	}

	if err := v.ValidatePatch(&model.BookingPatch{StartTime: "11:07"}); err == nil {
		t.Error("off-grid start in a patch must fail")
	}

	if err := v.ValidatePatch(&model.BookingPatch{}); err != nil {
		t.Errorf("empty patch must pass struct validation, got %v", err)
	}
}
