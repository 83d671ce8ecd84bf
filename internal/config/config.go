package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration
type Config struct {
	Addr            string
	BaseURL         string
	Debug           bool
	CatalogPath     string
	AssetsDir       string
	SessionCapacity int
	QRSize          int
	QRCacheSize     int
	AllowedOrigins  []string
	RequestTimeout  time.Duration
}

// Load reads .env when present, then the environment
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return Config{
		Addr:            getEnv("ADDR", ":8080"),
		BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Debug:           getEnvBool("DEBUG", false),
		CatalogPath:     getEnv("CATALOG_PATH", ""),
		AssetsDir:       getEnv("ASSETS_DIR", "assets"),
		SessionCapacity: getEnvInt("SESSION_CAPACITY", 1000),
		QRSize:          getEnvInt("QR_SIZE", 256),
		QRCacheSize:     getEnvInt("QR_CACHE_SIZE", 128),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		RequestTimeout:  getEnvSeconds("REQUEST_TIMEOUT_SECONDS", 30),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

// getEnvSeconds reads a duration in whole seconds. 0 is kept and means no limit.
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		// DEBUG=yes and similar still count as set
		return true
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
