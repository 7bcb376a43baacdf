package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/crypto/bcrypt"

	"niyam/internal/auth"
	"niyam/internal/cache"
	apperrors "niyam/internal/errors"
	"niyam/internal/model"
	"niyam/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Pagination describes the page block returned alongside user listings.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// UserUpdate carries the mutable fields of a PATCH. Empty strings leave the
// field unchanged.
type UserUpdate struct {
	Name  string
	Email string
	Role  string
}

// UserService exposes the user management operations behind the catch-all
// users routes. Mutations enforce the self-or-admin rule against the acting
// identity's claims.
type UserService interface {
	ListUsers(ctx context.Context, page, limit int) ([]model.User, *Pagination, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, actor *auth.Claims, email, name, password, role string) (*model.User, error)
	UpdateUser(ctx context.Context, actor *auth.Claims, id string, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, actor *auth.Claims, id string) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (s *userService) ListUsers(ctx context.Context, page, limit int) ([]model.User, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	return users, &Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, actor *auth.Claims, email, name, password, role string) (*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	msgs := model.ValidateNew(email, name, password)
	msgs = append(msgs, model.ValidateRole(role)...)
	if err := apperrors.NewValidationError(msgs); err != nil {
		return nil, err
	}

	user := &model.User{Email: email, Name: name, Role: role}
	user.Normalize()

	if existing, err := s.users.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor *auth.Claims, id string, update UserUpdate) (*model.User, error) {
	if actor.UserID != id && actor.Role != model.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if err := apperrors.NewValidationError(model.ValidateUpdate(update.Email, update.Name, update.Role)); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	// Only admins can change roles; a non-admin's role field is ignored.
	if update.Role != "" && actor.Role == model.RoleAdmin {
		user.Role = update.Role
	}
	user.Normalize()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor *auth.Claims, id string) error {
	if actor.UserID != id && actor.Role != model.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
