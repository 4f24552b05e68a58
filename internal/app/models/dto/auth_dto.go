package dto

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"jdoe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	FullName string `json:"fullName" binding:"omitempty,max=255" example:"John Doe"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// RefreshTokenRequest represents a token refresh attempt
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse carries the account identity together with its token pair.
type AuthResponse struct {
	UserID   int64         `json:"userId" example:"1"`
	Username string        `json:"username" example:"jdoe"`
	Email    string        `json:"email" example:"jdoe@example.com"`
	Tokens   TokenResponse `json:"tokens"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}
