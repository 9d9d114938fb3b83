package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"job-marketplace-api/internal/cache"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const categoryListKey = "categories:all"

type categoryService struct {
	repo     storage.CategoryRepository
	cache    cache.Store
	ttl      time.Duration
	validate *validator.Validate
}

// NewCategoryService creates a CategoryService whose List is cached for ttl.
func NewCategoryService(repo storage.CategoryRepository, store cache.Store, ttl time.Duration, validate *validator.Validate) CategoryService {
	return &categoryService{
		repo:     repo,
		cache:    store,
		ttl:      ttl,
		validate: validate,
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryListKey); data != nil {
		var categories []models.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
		log.Printf("CategoryService: discarding unreadable cache entry")
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing categories")
	}

	if data, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListKey, data, s.ttl)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	category, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("creating category %q", req.Name))
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	category, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating category %s", req.ID))
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting category %s", id))
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoryListKey); err != nil {
		log.Printf("CategoryService: failed to invalidate category cache: %v", err)
	}
}
