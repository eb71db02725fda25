package state

import "roomly/pkg/model"

// Reconciler merges inbound change events into the local booking set.
// Events for the same document id must be handed to Apply in arrival
// order; the reconciler never reorders or buffers. Duplicate and stale
// events are dropped silently, which is how echoes of the caller's own
// optimistic writes resolve to no-ops.
type Reconciler struct {
	set *Set
}

func NewReconciler(set *Set) *Reconciler {
	return &Reconciler{set: set}
}

// Set returns the booking set the reconciler maintains.
func (r *Reconciler) Set() *Set {
	return r.set
}

// Apply merges one tagged change event.
//
// added: appended unless an entry already shares the soft identity key,
// which suppresses echoes of optimistic inserts and duplicate delivery
// after a stream restart.
// modified: replaces the entry matching the document id; ignored when the
// id is unknown so an out-of-order event never resurrects a removed
// booking.
// removed: removes by id; a no-op when already absent.
func (r *Reconciler) Apply(ev model.ChangeEvent) {
	switch ev.Type {
	case model.ChangeAdded:
		if r.set.ContainsSlot(ev.Booking.SlotKey()) {
			return
		}
		r.set.Add(ev.Booking)
	case model.ChangeModified:
		r.set.Replace(ev.Booking)
	case model.ChangeRemoved:
		r.set.Remove(ev.Booking.ID)
	}
}
