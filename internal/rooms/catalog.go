// Package rooms holds the static room catalog. Rooms are reference data
// owned by configuration; nothing in the booking core mutates them.
package rooms

import "roomly/pkg/model"

var catalog = []model.Room{
	{
		ID:          1,
		Name:        "Level 1 Meeting Room",
		Capacity:    5,
		Description: "Small meeting room suitable for team discussions",
	},
	{
		ID:          2,
		Name:        "Level 2 Meeting Room",
		Capacity:    8,
		Description: "Large meeting room ideal for presentations and workshops",
	},
}

// All returns a copy of the catalog.
func All() []model.Room {
	out := make([]model.Room, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the room with the given id.
func Lookup(id int) (model.Room, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return model.Room{}, false
}
