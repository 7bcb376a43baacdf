package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SetAuthCookie attaches the token as an httpOnly, SameSite=Strict cookie on
// the response. Secure is dropped in development so plain-http local setups
// still receive it.
func SetAuthCookie(c echo.Context, name, token string, development bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenExpiry / time.Second),
		HttpOnly: true,
		Secure:   !development,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie overwrites the auth cookie with an immediately expiring
// empty value.
func ClearAuthCookie(c echo.Context, name string, development bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialized as Max-Age=0
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   !development,
		SameSite: http.SameSiteStrictMode,
	})
}
