package users

import "github.com/google/uuid"

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// RegisterRequest represents the data needed to create an organizer account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateRequest is a username and password pair
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetUserRequest addresses a single user
type GetUserRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// MeRequest asks for the calling user
type MeRequest struct{}
