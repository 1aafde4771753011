package dto

import "time"

// ErrorResponse is the generic error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the success body for registration and deletion.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the success body for sign-out.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// TokenResponse is the success body for sign-in.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ProfileResponse is the user view returned by /profile.
// It carries no sensitive fields.
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
