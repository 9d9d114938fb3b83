package handlers

import (
	"net/http"

	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {array}   models.Category
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body body      dto.CreateCategoryRequest true "Category name"
// @Success      201 {object}  models.Category
// @Failure      400 {object}  dto.ErrorResponse "Validation failed"
// @Failure      409 {object}  dto.ErrorResponse "Category already exists"
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id   path      string                    true "Category ID" Format(uuid)
// @Param        body body      dto.UpdateCategoryRequest true "New name"
// @Success      200 {object}  models.Category
// @Failure      404 {object}  dto.ErrorResponse "Category Not Found"
// @Failure      409 {object}  dto.ErrorResponse "Category already exists"
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "category")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	category, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Jobs in the category are kept with no category.
// @Tags         categories
// @Param        id path string true "Category ID" Format(uuid)
// @Success      204 "Category deleted"
// @Failure      404 {object}  dto.ErrorResponse "Category Not Found"
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "category")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
