package model

// ChangeType tags a change notification from the store.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// ChangeEvent is one tagged change notification. For removals only the
// booking id is populated; the store does not replay the deleted document.
// Events for the same document id arrive in order; events for distinct ids
// commute.
type ChangeEvent struct {
	Type    ChangeType `json:"type"`
	Booking Booking    `json:"booking"`
}
