package apiserver

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's process-level configuration, loaded from
// the environment the same way the teacher's main.go did: a best-
// effort .env load (ignored if the file is absent — the teacher logs
// and continues rather than failing, since production deploys set
// real environment variables instead of shipping a .env), then plain
// os.Getenv reads with defaults.
type Config struct {
	Port         string
	StepsPerYear int
}

// LoadConfig loads configuration from the process environment,
// attempting a .env load first.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := Config{
		Port:         "8080",
		StepsPerYear: 252,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg
}
