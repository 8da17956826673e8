// Package config loads runtime configuration: environment settings for
// the rates database and YAML batch-input files.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds environment-derived settings.
type Env struct {
	// DatabaseURL is the Postgres DSN for the rates database. Empty means
	// no database is configured and file or built-in rates are used.
	DatabaseURL string
}

// LoadEnv reads settings from the environment, after loading a .env file
// if one is present. A missing .env file is not an error.
func LoadEnv() Env {
	_ = godotenv.Load()
	return Env{
		DatabaseURL: os.Getenv("KENPAY_DATABASE_URL"),
	}
}
