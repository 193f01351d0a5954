package usecases

import (
	"context"
	"errors"

	"leadflow.backend/internal/domain/entities"
	domainerrors "leadflow.backend/internal/domain/errors"
	"leadflow.backend/internal/domain/repositories"
	"leadflow.backend/pkg/crypto"
	"leadflow.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register registers a new user
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	}

	// The repository maps a unique violation to ErrAlreadyExists, which
	// also covers the race between the existence check and the insert
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed bearer token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (string, *entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil, domainerrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return "", nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
