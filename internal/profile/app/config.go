package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL           string        // Base URL of the market backend API (default: http://localhost:8081)
	StorageFile          string        // Path to the SQLite local storage file (default: ./profile.db)
	LoginPath            string        // Where a visitor without a credential is sent (default: /login)
	HomeURL              string        // Target of the "go home" link (default: /)
	DefaultLocale        string        // Display language when Accept-Language matches nothing (default: ko)
	RequestTimeout       time.Duration // Timeout of each backend request (default: 10s)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired credential sweep interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory, or the file named by ENV_FILE, is loaded first; variables
// already set in the environment win.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(getEnvOrDefault("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	return Config{
		BackendURL:           getEnvOrDefault("PROFILE_BACKEND_URL", "http://localhost:8081"),
		StorageFile:          getEnvOrDefault("PROFILE_STORAGE_FILE", "profile.db"),
		LoginPath:            getEnvOrDefault("PROFILE_LOGIN_PATH", "/login"),
		HomeURL:              getEnvOrDefault("PROFILE_HOME_URL", "/"),
		DefaultLocale:        getEnvOrDefault("PROFILE_DEFAULT_LOCALE", "ko"),
		RequestTimeout:       getEnvDurationOrDefault("REQUEST_TIMEOUT", 10*time.Second),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}, nil
}

// loadDotEnv loads path if it exists. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
