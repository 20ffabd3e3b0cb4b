// Package config carga la configuración del proceso desde variables de
// entorno, con un .env opcional para desarrollo.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBDSN     string
	LogLevel  string
	LogFormat string
	AppName   string
}

// Load tolera la ausencia de .env (en prod no existe) y después lee
// las env vars. DBDSN vacío significa repos in-memory (modo dev).
func Load() Config {
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "pet-weight-tracker"
	}

	return Config{
		Addr:      addr,
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   appName,
	}
}
