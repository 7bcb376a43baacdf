package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "niyam/internal/errors"
)

// contextKey is where the verified token lands on the echo context.
const contextKey = "user"

// Middleware returns the JWT middleware guarding protected routes. The token
// is read from the auth cookie; a missing or invalid token is rejected with a
// 401 envelope before the wrapped handler runs.
func Middleware(secret, cookieName string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + cookieName,
		ContextKey:  contextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.Fail("Unauthorized"))
		},
	})
}

// CurrentClaims extracts the verified claims placed on the context by
// Middleware. The second return is false on routes that were not guarded.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}
