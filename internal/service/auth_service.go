package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"niyam/internal/auth"
	apperrors "niyam/internal/errors"
	"niyam/internal/model"
	"niyam/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, credential checks, and token minting for
// the local auth routes.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	CurrentUser(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{users: users, jwtService: jwtService}
}

// Register validates input, creates the user with a hashed password, and
// returns the user together with a signed token.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	if err := apperrors.NewValidationError(model.ValidateNew(email, name, password)); err != nil {
		return nil, "", err
	}

	user := &model.User{Email: email, Name: name, Role: model.RoleUser}
	user.Normalize()

	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user. The email is matched the way it was stored,
// lowercased and trimmed. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// CurrentUser re-reads the acting identity's record. A token whose user has
// since been deleted yields ErrUserNotFound.
func (s *authService) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}
