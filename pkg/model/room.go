package model

// Room is static reference data owned by configuration. It is never
// mutated by the booking core.
type Room struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}
