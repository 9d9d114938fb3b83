package dto

import (
	"time"

	"job-marketplace-api/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for self-registration.
type RegisterRequest struct {
	Email       *string `json:"email" validate:"omitempty,email,max=254"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,len=13,startswith=+"`
	FirstName   string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string  `json:"last_name" validate:"required,min=2,max=50"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	Role        string  `json:"role" validate:"omitempty,oneof=worker employer both"`
}

// CreateUserRequest is the repository insert performed by registration.
type CreateUserRequest struct {
	Email        *string
	PhoneNumber  *string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         models.UserRole
	Status       models.UserStatus
}

type VerifyAccountRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone number
	Code       string `json:"code" validate:"required,len=6,numeric"`
}

type ResendCodeRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// ListUsersRequest defines the admin user listing filters.
type ListUsersRequest struct {
	Role   string `form:"role" validate:"omitempty,oneof=worker employer both admin superadmin"`
	Status string `form:"status" validate:"omitempty,oneof=pending active disabled"`
	Pagination
}

// UpdateUserStatusBody is the body of PATCH /users/:id/status.
type UpdateUserStatusBody struct {
	Status string `json:"status" validate:"required"`
}

type SetUserStatusRequest struct {
	Actor    Actor
	TargetID uuid.UUID
	Status   models.UserStatus
}
