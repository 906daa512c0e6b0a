package models

import "time"

// Operator is the single-seat login for the gateway. No roles, no sessions
// beyond JWT expiry, no lockout counters.
type Operator struct {
	Username     string    `json:"username" example:"operator"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
