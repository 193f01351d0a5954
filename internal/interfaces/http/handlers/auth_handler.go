package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"leadflow.backend/internal/domain/entities"
	domainerrors "leadflow.backend/internal/domain/errors"
	"leadflow.backend/internal/interfaces/http/response"
)

type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (string, *entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validationError(err))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validationError(err))
		return
	}

	token, user, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, "Invalid email or password", domainerrors.ErrInvalidCredentials))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
