package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Config reads a variable from the environment.
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigDefault reads a variable from the environment, falling back to def.
func ConfigDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
