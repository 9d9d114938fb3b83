package handlers

import (
	"net/http"
	"time"

	"job-marketplace-api/internal/api/middleware"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler serves the auth and user directory endpoints.
type UserHandler struct {
	service      services.UserService
	validator    *validator.Validate
	cookieSecure bool
}

// NewUserHandler creates a new UserHandler. cookieSecure marks the auth cookie Secure.
func NewUserHandler(service services.UserService, validate *validator.Validate, cookieSecure bool) *UserHandler {
	return &UserHandler{service: service, validator: validate, cookieSecure: cookieSecure}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a pending account and sends a verification code. Either email or phone_number is required.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true "Registration details"
// @Success      201  {object}  models.User "Account created, pending verification"
// @Failure      400  {object}  dto.ErrorResponse "Validation failed"
// @Failure      409  {object}  dto.ErrorResponse "Email or phone number already registered"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// VerifyAccount godoc
// @Summary      Verify an account
// @Description  Activates a pending account with the code it was sent. After 5 wrong codes the pending code is discarded and a new one must be requested.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.VerifyAccountRequest true "Identifier and code"
// @Success      200  {object}  models.User "Account activated"
// @Failure      400  {object}  dto.ErrorResponse "Validation failed"
// @Failure      401  {object}  dto.ErrorResponse "Invalid or expired code"
// @Failure      404  {object}  dto.ErrorResponse "User Not Found"
// @Failure      409  {object}  dto.ErrorResponse "Account already verified"
// @Router       /auth/verify [post]
func (h *UserHandler) VerifyAccount(c *gin.Context) {
	var req dto.VerifyAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.VerifyAccount(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to verify account")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ResendCode godoc
// @Summary      Resend the verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.ResendCodeRequest true "Email or phone number"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse "User Not Found"
// @Failure      409  {object}  dto.ErrorResponse "Account already verified"
// @Router       /auth/resend-code [post]
func (h *UserHandler) ResendCode(c *gin.Context) {
	var req dto.ResendCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ResendCode(c.Request.Context(), &req); err != nil {
		respondError(c, err, "Failed to resend verification code")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification code sent"})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with email or phone number and password. The token is returned and also set as an httpOnly cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true "Login credentials"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  dto.ErrorResponse "Validation failed"
// @Failure      401  {object}  dto.ErrorResponse "Invalid credentials"
// @Failure      403  {object}  dto.ErrorResponse "Account pending or disabled"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, resp.Token, maxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the auth cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.ErrorResponse "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse "User Not Found"
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List users
// @Description  Admin only. Newest first.
// @Tags         users
// @Produce      json
// @Param        role   query string false "Filter by role" Enums(worker, employer, both, admin, superadmin)
// @Param        status query string false "Filter by status" Enums(pending, active, disabled)
// @Param        limit  query int    false "Pagination limit" default(10)
// @Param        offset query int    false "Pagination offset" default(0)
// @Success      200  {array}   models.User
// @Failure      403  {object}  dto.ErrorResponse "Admin only"
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.ListUsersRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	users, err := h.service.List(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserStatus godoc
// @Summary      Enable or disable a user
// @Description  Admin only. Admins cannot change superadmins.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string                   true "User ID" Format(uuid)
// @Param        body body      dto.UpdateUserStatusBody true "active or disabled"
// @Success      200  {object}  models.User
// @Failure      400  {object}  dto.ErrorResponse "Invalid status"
// @Failure      403  {object}  dto.ErrorResponse "Forbidden"
// @Failure      404  {object}  dto.ErrorResponse "User Not Found"
// @Failure      409  {object}  dto.ErrorResponse "Account pending verification"
// @Router       /users/{id}/status [patch]
// @Security     BearerAuth
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	targetID, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	var body dto.UpdateUserStatusBody
	if !bindJSON(c, &body) {
		return
	}

	user, err := h.service.SetStatus(c.Request.Context(), &dto.SetUserStatusRequest{
		Actor:    actor,
		TargetID: targetID,
		Status:   models.UserStatus(body.Status),
	})
	if err != nil {
		respondError(c, err, "Failed to update user status")
		return
	}
	c.JSON(http.StatusOK, user)
}
