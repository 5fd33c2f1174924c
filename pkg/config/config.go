package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTAlgorithm  string
	JWTIssuer     string
	JWTTTLMinutes int

	// Bootstrap superuser created by the seeder on first start.
	FirstSuperuser         string
	FirstSuperuserPassword string

	// Comma-separated allowlist of CORS origins.
	CORSOrigins string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              getEnv("JWT_SECRET", "dev-secret-change"),
		JWTAlgorithm:           getEnv("JWT_ALGORITHM", "HS256"),
		JWTIssuer:              getEnv("JWT_ISSUER", "petshop"),
		JWTTTLMinutes:          getEnvInt("JWT_TTL_MINUTES", 60),
		FirstSuperuser:         getEnv("FIRST_SUPERUSER", "admin@petshop.local"),
		FirstSuperuserPassword: getEnv("FIRST_SUPERUSER_PASSWORD", "changeme"),
		CORSOrigins:            getEnv("CORS_ORIGINS", "*"),
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
