package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "niyam/internal/errors"
	"niyam/internal/gateway"
)

// respondError maps a domain error to its status and envelope. Internal
// failures are logged server side and collapse to the fallback message.
func respondError(c echo.Context, err error, fallback string) error {
	status := apperrors.StatusFor(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(status, apperrors.Fail(apperrors.MessageFor(err, fallback)))
}

// respondUpstream maps a gateway error: backend rejections keep their status
// and detail, transport failures surface as 502.
func respondUpstream(c echo.Context, err error) error {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, apperrors.Fail(apiErr.Message))
	}

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, apperrors.Fail(ve.Error()))
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusBadGateway, apperrors.Fail("Upstream unavailable"))
}

// bearerFrom extracts the caller's bearer token from the Authorization
// header, falling back to the auth cookie. Empty when unauthenticated.
func bearerFrom(c echo.Context, cookieName string) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
