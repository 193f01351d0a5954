package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "leadflow.backend/internal/domain/errors"
	"leadflow.backend/pkg/jwt"
	"leadflow.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
)

// AuthMiddleware verifies the bearer token on protected routes. The
// reason for a rejection is logged but never sent to the client; every
// failure gets the same generic 401 envelope.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "malformed authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, reason string) {
	logger.Debug(c.Request.Context(), "request rejected",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", reason),
	)
	appErr := domainerrors.Unauthorized()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": appErr.Message})
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// GetUserEmail gets the authenticated user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
