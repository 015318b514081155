package event

import "time"

// Event represents a combat-sports show to which matches belong.
//
// Events are seeded out-of-band and read-only at runtime.
type Event struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Promotion string    `json:"promotion"`
	Date      time.Time `json:"date"`
}
