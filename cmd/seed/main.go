// Command seed creates or refreshes the bootstrap admin user so a fresh
// deployment has an account able to manage others.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"niyam/internal/config"
	"niyam/internal/db"
	apperrors "niyam/internal/errors"
	"niyam/internal/model"
	"niyam/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	mongoDB, err := db.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	email := getenv("SEED_ADMIN_EMAIL", "admin@niyam.local")
	name := getenv("SEED_ADMIN_NAME", "Administrator")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}
	if msgs := model.ValidateNew(email, name, password); len(msgs) > 0 {
		log.Fatalf("Invalid admin seed data: %v", msgs)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := repository.NewUserRepository(mongoDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Name = name
		existing.Role = model.RoleAdmin
		existing.Password = string(hashed)
		existing.Normalize()
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Updated existing admin user %s", email)
	case errors.Is(err, apperrors.ErrUserNotFound):
		admin := &model.User{
			Email:    email,
			Name:     name,
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		admin.Normalize()
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", email)
	default:
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	log.Println("Seed completed")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
