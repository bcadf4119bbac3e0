// Package model defines the core domain types for the daybook calendar
// service.
package model

import "time"

// Importance is the closed set of priority levels an event can carry.
// The integer codes are the wire and storage representation.
type Importance int16

const (
	ImportanceOrdinary  Importance = 1
	ImportanceImportant Importance = 2
	ImportanceCritical  Importance = 3
)

// Valid reports whether i is one of the three defined levels.
func (i Importance) Valid() bool {
	return i >= ImportanceOrdinary && i <= ImportanceCritical
}

// String returns the human-readable level name.
func (i Importance) String() string {
	switch i {
	case ImportanceOrdinary:
		return "ordinary"
	case ImportanceImportant:
		return "important"
	case ImportanceCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Event is a single dated entry owned by exactly one user. The owner is
// fixed at creation and never reassigned.
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DateTime    time.Time  `json:"dateTime"`
	Importance  Importance `json:"importance"`
	OwnerID     int64      `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateEventRequest is the payload for creating a new event. Importance
// and DateTime arrive as strings and are validated by the service layer
// before any store access.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	DateTime    string `json:"datetime"`
}

// UpdateEventRequest is the payload for replacing an existing event's
// mutable fields. The owner is not replaceable.
type UpdateEventRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	DateTime    string `json:"dateTime"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
