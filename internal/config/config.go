package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"financewise/internal/i18n"
)

type Config struct {
	// Database
	DBPath string

	// Default UI language, overridden by the persisted setting once set
	Language string

	// Parsed-date memo
	DateCacheSize int
	DateCacheTTL  time.Duration
}

func Load() *Config {
	return &Config{
		DBPath:        getEnv("FINANCEWISE_DB_PATH", "./data/financewise.db"),
		Language:      getEnv("FINANCEWISE_LANG", i18n.DefaultLanguage),
		DateCacheSize: getEnvInt("FINANCEWISE_DATE_CACHE_SIZE", 512),
		DateCacheTTL:  getEnvDuration("FINANCEWISE_DATE_CACHE_TTL", time.Hour),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	supported := i18n.Supported()
	isSupported := false
	for _, lang := range supported {
		if c.Language == lang {
			isSupported = true
			break
		}
	}
	if !isSupported {
		errors = append(errors, fmt.Sprintf("unsupported language '%s': must be one of %v", c.Language, supported))
	}

	if c.DateCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid date cache size %d: must be at least 1", c.DateCacheSize))
	} else if c.DateCacheSize > 100000 {
		errors = append(errors, fmt.Sprintf("invalid date cache size %d: must be at most 100000", c.DateCacheSize))
	}

	if c.DateCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid date cache ttl %v: must be at least 1 second", c.DateCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
