package dto

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"advisor@university.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FullName string `json:"fullName" binding:"required" example:"Jane Doe"`
	RoleType string `json:"roleType" binding:"omitempty,oneof=ADVISOR STUDENT" example:"ADVISOR"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"advisor@university.edu"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// RefreshTokenRequest is the payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries issued tokens
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
	TokenType    string `json:"tokenType" example:"Bearer"`
}
