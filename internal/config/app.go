package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

const (
	appDir      = ".aniterm"
	logFileName = "aniterm.log"
)

type AppConfig struct {
	Language       string        `json:"language"`
	LogFile        string        `json:"log_file"`
	LogLevel       string        `json:"log_level"`
	SessionTimeout time.Duration `json:"session_timeout"`
	Debug          bool          `json:"debug"`
}

// LoadAppConfig reads configuration from the environment. Each envFile that
// exists is loaded first; variables already set in the environment win.
func LoadAppConfig(envFiles ...string) (*AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	config := &AppConfig{
		Language:       getEnvOrDefault("ANITERM_LANG", "es"),
		LogFile:        getEnvOrDefault("ANITERM_LOG_FILE", defaultLogFile()),
		LogLevel:       getEnvOrDefault("ANITERM_LOG_LEVEL", "info"),
		SessionTimeout: parseDurationOrDefault("ANITERM_SESSION_TIMEOUT", 5*time.Minute),
		Debug:          IsDebugEnabled(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *AppConfig) Validate() error {
	switch c.Language {
	case "es", "en":
	default:
		return fmt.Errorf("invalid language: %s (must be 'es' or 'en')", c.Language)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.SessionTimeout <= 0 {
		return fmt.Errorf("session timeout must be positive, got: %v", c.SessionTimeout)
	}

	return nil
}

// LanguageTag returns the configured language as a BCP 47 tag.
func (c *AppConfig) LanguageTag() language.Tag {
	if c.Language == "en" {
		return language.English
	}
	return language.Spanish
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func defaultLogFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return logFileName
	}
	return filepath.Join(homeDir, appDir, logFileName)
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Language:       "es",
		LogFile:        defaultLogFile(),
		LogLevel:       "info",
		SessionTimeout: 5 * time.Minute,
	}
}

func IsDebugEnabled() bool {
	debug, err := strconv.ParseBool(os.Getenv("ANITERM_DEBUG"))
	return err == nil && debug
}
