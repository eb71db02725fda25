package model

import "time"

// SlotLock is an advisory lock keyed by a booking slot. Holding one while
// running create's duplicate check narrows the window in which two
// concurrent submissions for the identical interval can both pass the
// check and both insert.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
