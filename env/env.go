// Package env reads configuration from the environment, Docker style secret
// files and /run/secrets.
package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/web-frontend-engineering/web-library/format"
)

// secretsDir is where GetEnv looks for secret files.
var secretsDir = "/run/secrets"

// GetEnv reads an environment variable, falls back to _FILE version if not set,
// and as a third check, reads from a default secrets file under /run/secrets/{ENV}.
func GetEnv(key string, defaultValue ...string) string {
	defaultVal := ""
	if len(defaultValue) > 0 {
		defaultVal = defaultValue[0]
	}

	if value := os.Getenv(key); len(value) != 0 {
		return value
	}

	if filePath := os.Getenv(key + "_FILE"); len(filePath) != 0 {
		content, err := os.ReadFile(filePath)
		if err != nil {
			slog.Warn("reading env file", slog.String("key", key+"_FILE"), slog.Any("error", err))
			return defaultVal
		}

		if value := strings.TrimSpace(string(content)); len(value) != 0 {
			return value
		}
	}

	if secretsFilePath := filepath.Join(secretsDir, key); fileExists(secretsFilePath) {
		content, err := os.ReadFile(secretsFilePath)
		if err != nil {
			slog.Warn("reading secret file", slog.String("path", secretsFilePath), slog.Any("error", err))
			return defaultVal
		}

		if value := strings.TrimSpace(string(content)); len(value) != 0 {
			return value
		}
	}

	return defaultVal
}

// GetEnvInt64 reads an integer environment variable, returning the first
// defaultValue (or 0) when unset or unparsable.
func GetEnvInt64[T int | int64](key string, defaultValue ...T) int64 {
	if valueStr := GetEnv(key); len(valueStr) != 0 {
		parsed, err := strconv.ParseInt(valueStr, 10, 64)
		if err == nil {
			return parsed
		}

		slog.Warn("invalid integer env var", slog.String("key", key), slog.String("value", valueStr))
	}

	if len(defaultValue) > 0 {
		return int64(defaultValue[0])
	}

	return 0
}

// GetEnvInt reads an int environment variable and falls back to _FILE version or /run/secrets/{key}.
func GetEnvInt(key string, defaultValue ...int) int {
	return int(GetEnvInt64(key, defaultValue...))
}

// GetEnvBool reads a boolean with strconv.ParseBool semantics, returning
// defaultValue when unset or unparsable.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key)
	if len(valueStr) == 0 {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean env var", slog.String("key", key), slog.String("value", valueStr))
		return defaultValue
	}

	return parsed
}

// GetEnvDuration reads a duration in time.ParseDuration or "1d2h" syntax,
// returning defaultValue when unset or unparsable.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key)
	if len(valueStr) == 0 {
		return defaultValue
	}

	parsed, err := format.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration env var", slog.String("key", key), slog.String("value", valueStr))
		return defaultValue
	}

	return parsed.Std()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
