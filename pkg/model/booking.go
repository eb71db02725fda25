package model

import (
	"fmt"
	"time"
)

// Booking is one reservation of a room for a contiguous span of one
// calendar day. Times are minute-resolution wall-clock labels ("HH:MM");
// the interval is half-open, [StartTime, EndTime), except the end-of-day
// sentinel which stands for the last instant of the day. Two bookings may
// share a boundary label without conflicting.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	RoomID    int       `json:"roomId" bson:"roomId" validate:"required,min=1"`
	Date      string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	StartTime string    `json:"startTime" bson:"startTime" validate:"required,slot_label"`
	EndTime   string    `json:"endTime" bson:"endTime" validate:"required,end_label"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Company   string    `json:"company" bson:"company" validate:"omitempty,max=100"`
	OwnerID   string    `json:"ownerId,omitempty" bson:"ownerId,omitempty" validate:"omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" validate:"omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" validate:"omitempty"`
}

// SlotKey is the soft identity key (roomId, date, startTime, endTime).
// It recognizes "the same logical booking" across deliveries that do not
// yet share a store-assigned id. It is not a uniqueness constraint.
func (b *Booking) SlotKey() string {
	return fmt.Sprintf("%d|%s|%s|%s", b.RoomID, b.Date, b.StartTime, b.EndTime)
}

// SameIdentity reports whether the other booking was submitted by the same
// caller with the same display fields, which marks a retried duplicate
// submission rather than a competing reservation.
func (b *Booking) SameIdentity(other *Booking) bool {
	return b.OwnerID == other.OwnerID &&
		b.Name == other.Name &&
		b.Company == other.Company
}

// BookingPatch is a merge-patch against a stored booking. Zero-valued
// fields are left unchanged.
type BookingPatch struct {
	RoomID    *int   `json:"roomId,omitempty" validate:"omitempty,min=1"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"startTime,omitempty" validate:"omitempty,slot_label"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,end_label"`
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Company   string `json:"company,omitempty" validate:"omitempty,max=100"`
}

// Availability is the computed set of candidate time labels for a booking
// form: valid starts for a room/date, and valid ends for a chosen start.
type Availability struct {
	StartTimes []string `json:"startTimes"`
	EndTimes   []string `json:"endTimes"`
}
