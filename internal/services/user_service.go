package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo     storage.UserRepository
	codes    CodeIssuer
	sender   CodeSender
	tokens   TokenIssuer
	validate *validator.Validate
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, codes CodeIssuer, sender CodeSender, tokens TokenIssuer, validate *validator.Validate) UserService {
	return &userService{
		repo:     repo,
		codes:    codes,
		sender:   sender,
		tokens:   tokens,
		validate: validate,
	}
}

// trimToNil returns nil for missing or blank optional strings.
func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Register creates a pending account and sends it a verification code.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	req.Email = trimToNil(req.Email)
	req.PhoneNumber = trimToNil(req.PhoneNumber)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if req.Email == nil && req.PhoneNumber == nil {
		return nil, &ValidationError{Fields: map[string]string{
			"email":        "email or phone_number is required",
			"phone_number": "email or phone_number is required",
		}}
	}
	if req.Email != nil {
		lower := strings.ToLower(*req.Email)
		req.Email = &lower
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleWorker
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &dto.CreateUserRequest{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       models.UserStatusPending,
	})
	if err != nil {
		return nil, mapRepoError(err, "creating user")
	}

	// The account exists either way; a failed delivery can be retried through ResendCode.
	if err := s.sendCode(ctx, user); err != nil {
		log.Printf("Register: Could not deliver verification code to user %s: %v", user.ID, err)
	}
	return user, nil
}

func (s *userService) sendCode(ctx context.Context, user *models.User) error {
	code, err := s.codes.Issue(ctx, user.ID, user.Identifier())
	if err != nil {
		return err
	}
	return s.sender.SendVerificationCode(ctx, user, code)
}

func (s *userService) findPending(ctx context.Context, identifier string) (*models.User, error) {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, mapRepoError(err, "fetching user")
	}
	if user.Status != models.UserStatusPending {
		return nil, fmt.Errorf("%w: account is already verified", ErrInvalidState)
	}
	return user, nil
}

func (s *userService) VerifyAccount(ctx context.Context, req *dto.VerifyAccountRequest) (*models.User, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	user, err := s.findPending(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	ok, err := s.codes.Verify(ctx, user.ID, req.Code)
	if err != nil {
		log.Printf("VerifyAccount: Error checking code for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("internal error verifying code: %w", err)
	}
	if !ok {
		log.Printf("VerifyAccount: Invalid or expired code for user %s", user.ID)
		return nil, fmt.Errorf("%w: invalid or expired verification code", ErrUnauthorized)
	}

	activated, err := s.repo.UpdateStatus(ctx, user.ID, models.UserStatusActive)
	if err != nil {
		return nil, mapRepoError(err, "activating user")
	}
	log.Printf("User %s verified", activated.ID)
	return activated, nil
}

func (s *userService) ResendCode(ctx context.Context, req *dto.ResendCodeRequest) error {
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}

	user, err := s.findPending(ctx, req.Identifier)
	if err != nil {
		return err
	}
	if err := s.sendCode(ctx, user); err != nil {
		log.Printf("ResendCode: Error issuing code for user %s: %v", user.ID, err)
		return fmt.Errorf("internal error issuing verification code: %w", err)
	}
	return nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed: user not found")
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user during login: %v", err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for user %s: invalid password", user.ID)
		return nil, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		log.Printf("Login attempt by user %s with status %s", user.ID, user.Status)
		return nil, fmt.Errorf("%w: account is %s", ErrForbidden, user.Status)
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, actor dto.Actor, req *dto.ListUsersRequest) ([]models.User, error) {
	if !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", ErrForbidden)
	}
	req.Normalize()
	users, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

// SetStatus enables or disables an account. Admins cannot touch superadmins, and
// accounts still pending verification are left alone.
func (s *userService) SetStatus(ctx context.Context, req *dto.SetUserStatusRequest) (*models.User, error) {
	if req.Status != models.UserStatusActive && req.Status != models.UserStatusDisabled {
		return nil, fmt.Errorf("%w: status must be active or disabled", ErrInvalidArgument)
	}
	if !req.Actor.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", ErrForbidden)
	}

	target, err := s.repo.GetByID(ctx, req.TargetID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.TargetID))
	}
	if target.Role == models.RoleSuperAdmin && req.Actor.Role != models.RoleSuperAdmin {
		log.Printf("SetStatus: Admin %s attempted to change superadmin %s", req.Actor.ID, target.ID)
		return nil, fmt.Errorf("%w: only a superadmin can change another superadmin", ErrForbidden)
	}
	if target.Status == models.UserStatusPending {
		return nil, fmt.Errorf("%w: account has not been verified", ErrInvalidState)
	}

	updated, err := s.repo.UpdateStatus(ctx, target.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating user status")
	}
	log.Printf("User %s status set to %s by %s", updated.ID, updated.Status, req.Actor.ID)
	return updated, nil
}
