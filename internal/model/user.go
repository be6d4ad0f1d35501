package model

import "time"

// User is a back-office account that can manage records.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for user authentication, accepted as JSON or form data.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=128"`
}

// NewUserInput holds the fields needed to open an account.
type NewUserInput struct {
	Name     string `form:"name" validate:"required,max=255"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=6,max=128"`
}

// LoginResponse is returned after a successful API login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
