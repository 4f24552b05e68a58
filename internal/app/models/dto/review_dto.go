package dto

// CreateReviewRequest represents a new review for an event. Author and event
// come from the caller and the URL, never from the body.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required" example:"4"`
	Comment string `json:"comment" example:"Great talks, crowded venue"`
}

// UpdateReviewRequest represents an update to an existing review.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
