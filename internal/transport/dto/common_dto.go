package dto

import (
	"job-marketplace-api/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is embedded in list requests bound from the query string.
type Pagination struct {
	Limit  int `form:"limit,default=10"`
	Offset int `form:"offset,default=0"`
}

// Normalize applies the default page size, clamps it to MaxLimit and floors the offset at 0.
func (p *Pagination) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
