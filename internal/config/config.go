package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs at startup. It is built once in
// main and passed by reference; nothing reads the environment after Load.
type Config struct {
	Port              string
	DatabaseURL       string
	SessionSecret     []byte
	CorsAllowedOrigin string
	GeminiAPIKey      string
	GeminiModel       string
}

// Load reads configuration from a .env file if present, falling back to OS
// environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with OS environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is required")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "host=localhost user=postgres password=password dbname=careeros port=5432 sslmode=disable"
	}

	corsOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &Config{
		Port:              port,
		DatabaseURL:       dbURL,
		SessionSecret:     []byte(secret),
		CorsAllowedOrigin: corsOrigin,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       model,
	}, nil
}
