package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"niyam/internal/auth"
	apperrors "niyam/internal/errors"
	"niyam/internal/model"
)

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: primitive.NewObjectID().Hex(), Email: "admin@example.com", Role: model.RoleAdmin}
}

func userClaims(id string) *auth.Claims {
	return &auth.Claims{UserID: id, Email: "user@example.com", Role: model.RoleUser}
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		actor         *auth.Claims
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "admin creates user",
			actor: adminClaims(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrUserNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "non-admin is rejected",
			actor:         userClaims("someone"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:  "duplicate email",
			actor: adminClaims(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").
					Return(&model.User{Email: "new@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.CreateUser(context.Background(), tt.actor, "new@example.com", "New User", "password123", model.RoleUser)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "new@example.com", user.Email)
			}
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("unknown role is rejected before any repository access", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.CreateUser(context.Background(), adminClaims(), "new@example.com", "New User", "password123", "superuser")

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "Role must be either user or admin")
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	targetID := primitive.NewObjectID()
	existing := func() *model.User {
		return &model.User{ID: targetID, Email: "target@example.com", Name: "Target", Role: model.RoleUser}
	}

	tests := []struct {
		name          string
		actor         *auth.Claims
		update        UserUpdate
		setupMock     func(*MockUserRepository)
		expectedError error
		check         func(*testing.T, *model.User)
	}{
		{
			name:   "self update changes name",
			actor:  userClaims(targetID.Hex()),
			update: UserUpdate{Name: "Renamed"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, targetID.Hex()).Return(existing(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Renamed", u.Name)
			},
		},
		{
			name:   "role change by non-admin is ignored",
			actor:  userClaims(targetID.Hex()),
			update: UserUpdate{Role: model.RoleAdmin},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, targetID.Hex()).Return(existing(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, model.RoleUser, u.Role)
			},
		},
		{
			name:   "role change by admin applies",
			actor:  adminClaims(),
			update: UserUpdate{Role: model.RoleAdmin},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, targetID.Hex()).Return(existing(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, model.RoleAdmin, u.Role)
			},
		},
		{
			name:          "stranger is rejected",
			actor:         userClaims("someone-else"),
			update:        UserUpdate{Name: "Hijack"},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:          "invalid email",
			actor:         userClaims(targetID.Hex()),
			update:        UserUpdate{Email: "nope"},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: &apperrors.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.UpdateUser(context.Background(), tt.actor, targetID.Hex(), tt.update)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if ve, ok := tt.expectedError.(*apperrors.ValidationError); ok {
					assert.ErrorAs(t, err, &ve)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, user)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	targetID := primitive.NewObjectID().Hex()

	t.Run("self delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(nil)

		svc := NewUserService(mockRepo, nil)
		assert.NoError(t, svc.DeleteUser(context.Background(), userClaims(targetID), targetID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("stranger rejected before any repository access", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		err := svc.DeleteUser(context.Background(), userClaims("other"), targetID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(apperrors.ErrUserNotFound)

		svc := NewUserService(mockRepo, nil)
		err := svc.DeleteUser(context.Background(), adminClaims(), targetID)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything, 2, 10).Return([]model.User{{Name: "A"}, {Name: "B"}}, nil)
	mockRepo.On("Count", mock.Anything).Return(int64(25), nil)

	svc := NewUserService(mockRepo, nil)
	users, pagination, err := svc.ListUsers(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	mockRepo.AssertExpectations(t)
}
