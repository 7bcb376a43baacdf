package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	CookieName    string
	APIBaseURL    string
	FrontendURL   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SwaggerHost   string
	Development   bool
}

// Load builds Config from environment. Required variables that are missing
// terminate the process; everything else has a sensible default.
func Load() *Config {
	// Best effort: a missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "niyam"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CookieName:    getEnv("COOKIE_NAME", "niyam-token"),
		APIBaseURL:    getEnv("API_BASE_URL", "https://niyamapi.achyutkoirala.com.np"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		Development:   getEnv("APP_ENV", "development") == "development",
	}

	for name, value := range map[string]string{
		"MONGODB_URI": cfg.MongoURI,
		"JWT_SECRET":  cfg.JWTSecret,
	} {
		if value == "" {
			log.Fatalf("required environment variable %s is missing", name)
		}
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
