package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                    // Unique username
	Email     string    `json:"email" db:"email" example:"jdoe@example.com"`              // User's email address
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// UserSummary is the lightweight user representation nested in events, RSVPs and reviews.
type UserSummary struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"jdoe"`
	FullName string `json:"fullName,omitempty" example:"John Doe"`
}
