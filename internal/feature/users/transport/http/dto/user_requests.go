// Package dto defines the request and response payloads for the users
// endpoints.
package dto

// UpdateAccountRequest is the body for rewriting the account fields.
// All four are required, mirroring registration.
type UpdateAccountRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	UserName   string `json:"user_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	ProfileTag string `json:"profile_tag" binding:"required"`
}

// ExistsResponse reports handle availability.
type ExistsResponse struct {
	UserName string `json:"user_name"`
	Exists   bool   `json:"exists"`
}

// AccountResponse is the sanitized account projection returned by the
// current-user and account update endpoints.
type AccountResponse struct {
	ID         uint   `json:"_id"`
	FullName   string `json:"full_name"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	ProfileTag string `json:"profile_tag"`
	Avatar     string `json:"avatar"`
}
