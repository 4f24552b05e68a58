package dto

import "time"

// CreateEventRequest represents a new event. The organizer is never part of
// the request; it is taken from the authenticated caller.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255" example:"Go Meetup Istanbul"`
	Description string    `json:"description" binding:"required" example:"Monthly Go meetup"`
	Location    string    `json:"location" binding:"required,max=255" example:"Kadikoy"`
	StartTime   time.Time `json:"startTime" binding:"required" example:"2024-06-01T18:00:00Z"`
	EndTime     time.Time `json:"endTime" binding:"required" example:"2024-06-01T21:00:00Z"`
	IsPublic    *bool     `json:"isPublic" example:"true"`
}

// UpdateEventRequest represents a partial event update. Absent fields keep
// their stored values; time validation runs against the merged result.
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	IsPublic    *bool      `json:"isPublic"`
}

// EventListQuery captures the supported list filters.
type EventListQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	OrderBy  string `form:"orderBy"`
}
