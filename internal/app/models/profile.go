package models

import (
	"time"
)

// Profile defines the profile model based on the 'profiles' table.
// Every user has exactly one profile; it is created in the same transaction
// as the user row itself.
type Profile struct {
	UserID     int64     `json:"userId" db:"user_id" example:"1"`
	FullName   string    `json:"fullName" db:"full_name" example:"John Doe"`
	Bio        string    `json:"bio" db:"bio" example:"Likes long walks and short meetups"`
	Location   string    `json:"location" db:"location" example:"Istanbul"`
	PictureURL string    `json:"pictureUrl" db:"picture_url" example:"https://example.com/p/jdoe.png"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// OwnerID returns the owning user of the profile.
func (p *Profile) OwnerID() int64 {
	return p.UserID
}
