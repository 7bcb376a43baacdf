package main

import (
	"context"
	"log"
	"net/http"

	_ "niyam/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"niyam/internal/auth"
	"niyam/internal/cache"
	"niyam/internal/config"
	"niyam/internal/db"
	"niyam/internal/gateway"
	"niyam/internal/handler"
	"niyam/internal/repository"
	"niyam/internal/router"
	"niyam/internal/service"
)

// @title Niyam API
// @version 1.0
// @description Legal accessibility API: local auth and user management plus proxied access to the Niyam backend.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	mongoDB, err := db.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	backend := gateway.New(cfg.APIBaseURL, nil)

	// Repositories and auth components
	userRepo := repository.NewUserRepository(mongoDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	feedService := service.NewFeedService(backend, cacheClient)
	searchService := service.NewSearchService(backend, cacheClient)
	docsService := service.NewDocsService(backend, cacheClient)
	professionalService := service.NewProfessionalService(backend, cacheClient)

	// Handlers
	router.Register(e, cfg, router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg),
		User:         handler.NewUserHandler(userService),
		Feed:         handler.NewFeedHandler(feedService),
		Search:       handler.NewSearchHandler(searchService),
		Docs:         handler.NewDocsHandler(docsService, cfg.CookieName),
		Professional: handler.NewProfessionalHandler(professionalService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
