package dto

import (
	"net/mail"
	"time"

	"github.com/spec-kit/marketplace/internal/domain"
	apperrors "github.com/spec-kit/marketplace/pkg/util"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload before it reaches business logic.
func (r RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewValidationError("invalid email address", map[string]any{"email": r.Email})
	}
	if len(r.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload.
func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	return nil
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the envelope returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// NewUserResponse maps a domain user, hiding the password hash.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}
