package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoryRepo implements the storage.CategoryRepository interface using PostgreSQL.
type CategoryRepo struct {
	db storage.Querier
}

func NewCategoryRepo(db storage.Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

var _ storage.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying categories: %v\n", err)
		return nil, err
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		log.Printf("Error scanning categories: %v\n", err)
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`
	var c models.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting category %s: %v\n", id, err)
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, created_at, updated_at`

	var c models.Category
	err := r.db.QueryRow(ctx, query, uuid.New(), strings.TrimSpace(req.Name)).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			log.Printf("Attempted to create duplicate category %q\n", req.Name)
			return nil, fmt.Errorf("category %q already exists: %w", req.Name, storage.ErrConflict)
		}
		log.Printf("Error creating category: %v\n", err)
		return nil, err
	}
	log.Printf("Category created successfully with ID: %s", c.ID)
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	query := `
		UPDATE categories SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`

	var c models.Category
	err := r.db.QueryRow(ctx, query, req.ID, strings.TrimSpace(req.Name)).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return nil, fmt.Errorf("category %q already exists: %w", req.Name, storage.ErrConflict)
		}
		log.Printf("Error updating category %s: %v\n", req.ID, err)
		return nil, err
	}
	return &c, nil
}

// Delete removes a category. Jobs referencing it keep existing with a NULL category.
func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting category %s: %v\n", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("Category deleted successfully with ID: %s", id)
	return nil
}
