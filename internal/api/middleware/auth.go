package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"job-marketplace-api/internal/auth"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	// TokenCookie is the httpOnly cookie set at login.
	TokenCookie = "token"
	userCtx     = "userID"
	roleCtx     = "role"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

var errNoToken = errors.New("no bearer token")

// extractToken reads the bearer token from the Authorization header, falling back to the cookie.
func extractToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
			return "", errors.New("invalid Authorization header format")
		}
		return headerParts[1], nil
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errNoToken
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(userCtx, claims.UserID)
	c.Set(roleCtx, claims.Role)
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func JWTAuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			log.Printf("Auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token"})
			}
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and otherwise lets the
// request through anonymously.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err == nil {
			if claims, err := tokens.Parse(tokenString); err == nil {
				setClaims(c, claims)
			} else {
				log.Printf("Optional auth: ignoring invalid token: %v", err)
			}
		}
		c.Next()
	}
}

// RequireRole must run after JWTAuthMiddleware.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := GetActorFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}
		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		log.Printf("RequireRole: user %s with role %s denied", actor.ID, actor.Role)
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Insufficient permissions"})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleSuperAdmin)
}

// GetUserIDFromContext returns the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetActorFromContext returns the authenticated caller with their role.
func GetActorFromContext(c *gin.Context) (dto.Actor, error) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return dto.Actor{}, err
	}
	role, _ := c.Get(roleCtx)
	r, ok := role.(models.UserRole)
	if !ok {
		return dto.Actor{}, errors.New("role in context is of invalid type")
	}
	return dto.Actor{ID: userID, Role: r}, nil
}
