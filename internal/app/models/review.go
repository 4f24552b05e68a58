package models

import (
	"time"
)

// Rating bounds enforced before any write reaches the store.
const (
	MinRating = 1
	MaxRating = 5
)

// Review defines the review model based on the 'reviews' table.
// A user reviews an event at most once; author and event are immutable.
type Review struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	EventID   int64     `json:"eventId" db:"event_id" example:"1"`
	UserID    int64     `json:"userId" db:"user_id" example:"1"`
	Rating    int       `json:"rating" db:"rating" example:"4"`
	Comment   string    `json:"comment,omitempty" db:"comment" example:"Great talks, crowded venue"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`

	User *UserSummary `json:"user,omitempty"` // Relation, no db tag
}

// OwnerID returns the author as the owner of the review.
func (r *Review) OwnerID() int64 {
	return r.UserID
}
