package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"niyam/internal/auth"
	"niyam/internal/config"
	apperrors "niyam/internal/errors"
	"niyam/internal/service"
)

// AuthHandler handles the local authentication routes.
type AuthHandler struct {
	authService service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Invalid request body"))
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return respondError(c, err, "Registration failed")
	}

	auth.SetAuthCookie(c, h.cfg.CookieName, token, h.cfg.Development)
	return c.JSON(http.StatusCreated, apperrors.OK(echo.Map{"user": user}, "Registration successful"))
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Email and password are required"))
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Authentication failed")
	}

	auth.SetAuthCookie(c, h.cfg.CookieName, token, h.cfg.Development)
	return c.JSON(http.StatusOK, apperrors.OK(echo.Map{"user": user}, "Login successful"))
}

// Logout godoc
// @Summary Clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.ClearAuthCookie(c, h.cfg.CookieName, h.cfg.Development)
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Message: "Logged out successfully"})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Fail("Not authenticated"))
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err, "Failed to fetch user data")
	}
	return c.JSON(http.StatusOK, apperrors.OK(echo.Map{"user": user}, ""))
}
