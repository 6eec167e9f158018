package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment variable, loading .env first
// so local development works without exporting anything.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigOr returns the value of an environment variable or a fallback when
// it is unset or empty.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
