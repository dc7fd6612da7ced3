package dto

// LoginRequest authenticates by generated user code and password
type LoginRequest struct {
	Code     string `json:"code" binding:"required" example:"2025010001"`
	Password string `json:"password" binding:"required" validate:"min=6,max=20"`
}

// LoginResponse carries the issued token pair. needsPasswordChange is true
// while the account still uses the administrator-assigned default password.
type LoginResponse struct {
	AccessToken         string `json:"accessToken"`
	RefreshToken        string `json:"refreshToken"`
	ExpiresIn           int    `json:"expiresIn" example:"3600"`
	NeedsPasswordChange bool   `json:"needsPasswordChange"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest rotates the caller's password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required" validate:"min=6,max=20"`
}
