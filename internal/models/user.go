package models

import "time"

// User is an account as returned by the API
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRegistration is the sign-up payload. It is never persisted as-is.
// The password min tag must match constants.PasswordMinLen.
type UserRegistration struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=8"`
	Name     string `json:"name" validate:"min=1"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs an authenticated user with an opaque bearer token
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
