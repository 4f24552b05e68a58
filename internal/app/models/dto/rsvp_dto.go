package dto

// RSVPRequest represents an RSVP create or update. Status defaults to Maybe
// when omitted on first response.
type RSVPRequest struct {
	Status string `json:"status" binding:"omitempty,oneof='Going' 'Maybe' 'Not Going'" example:"Going"`
}
