package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("First name is required"),
			validation.Length(2, 100).Error("First name must be at least 2 characters long"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("Last name is required"),
			validation.Length(2, 100).Error("Last name must be at least 2 characters long"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Email must be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 128).Error("Password must be at least 6 characters long"),
		),
	)
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse carries the sanitized user plus the signed token.
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
