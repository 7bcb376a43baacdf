package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"niyam/internal/auth"
	"niyam/internal/config"
	"niyam/internal/handler"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Feed         *handler.FeedHandler
	Search       *handler.SearchHandler
	Docs         *handler.DocsHandler
	Professional *handler.ProfessionalHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	guard := auth.Middleware(cfg.JWTSecret, cfg.CookieName)

	// Auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/auth/me", h.Auth.Me, guard)

	// Users: reads are public, mutations require a valid cookie token.
	api.GET("/users", h.User.ListUsers)
	api.GET("/users/:id", h.User.GetUser)
	api.POST("/users", h.User.CreateUser, guard)
	api.PATCH("/users/:id", h.User.UpdateUser, guard)
	api.DELETE("/users/:id", h.User.DeleteUser, guard)

	// Proxied backend routes
	api.GET("/feed", h.Feed.Feed)
	api.GET("/articles/:slug", h.Feed.Article)
	api.POST("/articles/:slug/view", h.Feed.RecordView)
	api.GET("/search/:type", h.Search.Search)
	api.GET("/documents", h.Docs.List)
	api.GET("/documents/:id", h.Docs.Get)
	api.GET("/documents/:id/structured", h.Docs.Structured)
	api.GET("/mydocs", h.Docs.Mine, guard)
	api.POST("/documents", h.Docs.Upload, guard)
	api.GET("/professionals", h.Professional.List)
	api.GET("/professionals/:id", h.Professional.Get)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
