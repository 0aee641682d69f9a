package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	pkgconfig "github.com/bewise-id/admin-web/pkg/config"
)

type Config struct {
	LISTEN_ADDR  string
	API_BASE_URL string
	LOG_LEVEL    string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		LISTEN_ADDR:  pkgconfig.EnvDefault("LISTEN_ADDR", ":3000"),
		API_BASE_URL: os.Getenv("API_BASE_URL"),
		LOG_LEVEL:    pkgconfig.EnvDefault("LOG_LEVEL", "info"),
	}

	pkgconfig.MustNonEmpty(config.API_BASE_URL, "API_BASE_URL")

	return config, nil
}
