package models

import (
	"math"
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Go Meetup Istanbul"`
	Description string    `json:"description" db:"description" example:"Monthly Go meetup"`
	OrganizerID int64     `json:"organizerId" db:"organizer_id" example:"1"`
	Location    string    `json:"location" db:"location" example:"Kadikoy"`
	StartTime   time.Time `json:"startTime" db:"start_time" example:"2024-06-01T18:00:00Z"`
	EndTime     time.Time `json:"endTime" db:"end_time" example:"2024-06-01T21:00:00Z"`
	IsPublic    bool      `json:"isPublic" db:"is_public" example:"true"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	Organizer *UserSummary `json:"organizer,omitempty"` // Relation, no db tag

	// Derived fields, computed by the listing query, never stored.
	RSVPCount     int64       `json:"rsvpCount" example:"12"`
	AverageRating *float64    `json:"averageRating,omitempty" example:"4.5"`
	UserRSVP      *RSVPStatus `json:"userRsvpStatus,omitempty" example:"Going"`
}

// OwnerID returns the organizer as the owning user of the event.
func (e *Event) OwnerID() int64 {
	return e.OrganizerID
}

// AverageRating turns a rating sum and count into the rounded average exposed
// on events: one decimal place, nil when there are no reviews. All read paths
// (list, detail, tests) share this so rounding stays consistent.
func AverageRating(sum, count int64) *float64 {
	if count == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &avg
}
