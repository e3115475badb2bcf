package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Templates
	TemplateDir       string
	TemplateCacheSize int
	// Logging
	LogDir      string
	LogMaxFiles int
	// Auth (empty JWKS URL disables bearer authentication)
	AuthJWKSURL string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TemplateDir:       getEnv("TEMPLATE_DIR", ""),
		TemplateCacheSize: getEnvInt("TEMPLATE_CACHE_SIZE", DefaultTemplateCacheSize),
		LogDir:            getEnv("LOG_DIR", ""),
		LogMaxFiles:       getEnvInt("LOG_MAX_FILES", DefaultLogMaxFiles),
		AuthJWKSURL:       getEnv("AUTH_JWKS_URL", ""),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true" // Enable DEBUG in dev/test by default
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
