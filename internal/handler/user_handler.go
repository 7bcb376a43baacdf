package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"niyam/internal/auth"
	apperrors "niyam/internal/errors"
	"niyam/internal/service"
)

// UserHandler serves the catch-all users routes: public reads, guarded
// mutations with self-or-admin rules enforced in the service.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the admin-only user creation payload.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest carries PATCH fields; absent fields stay unchanged.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListUsers godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, pagination, err := h.svc.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}

	return c.JSON(http.StatusOK, apperrors.OK(echo.Map{
		"users":      users,
		"pagination": pagination,
	}, ""))
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, apperrors.OK(user, ""))
}

// CreateUser godoc
// @Summary Create user (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized"))
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Name, email, and password are required"))
	}

	user, err := h.svc.CreateUser(c.Request().Context(), claims, req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		return respondError(c, err, "Failed to create user")
	}
	return c.JSON(http.StatusCreated, apperrors.OK(user, "User created successfully"))
}

// UpdateUser godoc
// @Summary Update user (self or admin)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized"))
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("User ID is required"))
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Invalid request body"))
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), claims, id, service.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return respondError(c, err, "Failed to update user")
	}
	return c.JSON(http.StatusOK, apperrors.OK(user, "User updated successfully"))
}

// DeleteUser godoc
// @Summary Delete user (self or admin)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized"))
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("User ID is required"))
	}

	if err := h.svc.DeleteUser(c.Request().Context(), claims, id); err != nil {
		return respondError(c, err, "Failed to delete user")
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Message: "User deleted successfully"})
}
