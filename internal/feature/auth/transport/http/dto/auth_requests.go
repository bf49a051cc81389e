// Package dto defines the request/response DTOs for the auth feature.
package dto

// LoginRequest is the request DTO for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request DTO for the token refresh endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest is the request DTO for the password change
// endpoint.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UserResponse is the sanitized user projection returned by register
// and login; password and tokens are never included.
type UserResponse struct {
	ID         uint   `json:"_id"`
	FullName   string `json:"full_name"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	ProfileTag string `json:"profile_tag"`
	Avatar     string `json:"avatar"`
}

// LoginResponse is the response DTO for login and refresh.
type LoginResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
