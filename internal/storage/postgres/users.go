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

const userColumns = `id, email, phone_number, first_name, last_name, role, status, password_hash, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db storage.Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db storage.Querier) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PhoneNumber,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Status,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Email and phone uniqueness is enforced by the schema.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, phone_number, first_name, last_name, role, status, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Email,
		req.PhoneNumber,
		req.FirstName,
		req.LastName,
		req.Role,
		req.Status,
		req.PasswordHash,
	))
	if err != nil {
		code, constraint := pgErrorCode(err)
		if code == pgUniqueViolation {
			log.Printf("Attempted to create user with duplicate identifier (%s): %v\n", constraint, err)
			switch {
			case strings.Contains(constraint, "email"):
				return nil, fmt.Errorf("%w: %w", storage.ErrConflict, storage.ErrDuplicateEmail)
			case strings.Contains(constraint, "phone"):
				return nil, fmt.Errorf("%w: %w", storage.ErrConflict, storage.ErrDuplicatePhone)
			}
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", id, err)
		return nil, err
	}
	return user, nil
}

// GetByIdentifier matches the identifier against the email (case-insensitively) or the phone number.
func (r *UserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1) OR phone_number = $1 LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, query, strings.TrimSpace(identifier)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by identifier: %v\n", err)
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error) {
	var qb queryBuilder
	if req.Role != "" {
		qb.where("role = " + qb.arg(req.Role))
	}
	if req.Status != "" {
		qb.where("status = " + qb.arg(req.Status))
	}
	query := qb.build(`SELECT `+userColumns+` FROM users`, "created_at DESC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying users: %v\n", err)
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Printf("Error scanning user row: %v\n", err)
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	query := `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to update status of non-existent user %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status of user %s: %v\n", id, err)
		return nil, err
	}
	log.Printf("User %s status set to %s", id, status)
	return user, nil
}
