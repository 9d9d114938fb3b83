package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateCategoryRequest struct {
	ID   uuid.UUID `json:"-"` // From path
	Name string    `json:"name" validate:"required,min=2,max=50"`
}
