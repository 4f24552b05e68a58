package dto

// UpdateProfileRequest represents a profile update by its owning user.
type UpdateProfileRequest struct {
	FullName   *string `json:"fullName" binding:"omitempty,max=255"`
	Bio        *string `json:"bio"`
	Location   *string `json:"location" binding:"omitempty,max=255"`
	PictureURL *string `json:"pictureUrl" binding:"omitempty,url"`
}
