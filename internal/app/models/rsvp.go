package models

import (
	"time"
)

// RSVPStatus represents a user's response to an event.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "Going"
	RSVPMaybe    RSVPStatus = "Maybe"
	RSVPNotGoing RSVPStatus = "Not Going"
)

// Valid reports whether the status is one of the three known values.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// RSVP defines the rsvp model based on the 'rsvps' table.
// At most one row exists per (event, user) pair; writes go through an upsert.
type RSVP struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	EventID   int64      `json:"eventId" db:"event_id" example:"1"`
	UserID    int64      `json:"userId" db:"user_id" example:"1"`
	Status    RSVPStatus `json:"status" db:"status" example:"Going"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	User       *UserSummary `json:"user,omitempty"`       // Relation, no db tag
	EventTitle string       `json:"eventTitle,omitempty"` // Filled on "my rsvps" listings
}

// OwnerID returns the responding user as the owner of the RSVP.
func (r *RSVP) OwnerID() int64 {
	return r.UserID
}
