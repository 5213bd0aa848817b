package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/camden-git/familytree/logger"
)

const (
	DefaultFamilyCSVPath = "data/family.csv"
	DefaultSnapshotPath  = "family_snapshot.db"
	DefaultPort          = "8080"
)

const (
	defaultMaxDepth    = 2
	defaultCORSOrigins = "http://localhost:5173"
)

type Config struct {
	// family sources; DatabasePath wins over FamilyCSVPath when set
	FamilyCSVPath string
	DatabasePath  string

	// export target for the validated snapshot
	SnapshotPath string

	// optional YAML file with the generational poem
	LineagePath string

	// http settings
	Port               string
	CORSAllowedOrigins []string
	DefaultMaxDepth    int // subtree depth when the caller sends none

	LogJSON bool
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		logger.Logger.Warnw("invalid integer setting, using default", "env", envVar, "value", valStr, "default", defaultVal, logger.FieldError, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		logger.Logger.Warnw("invalid boolean setting, using default", "env", envVar, "value", valStr, "default", defaultVal)
		return defaultVal
	}
	return val
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func absOrEmpty(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	return filepath.Abs(p)
}

func LoadConfig() (Config, error) {
	csvPath := getEnvOrDefault("FAMILY_CSV_PATH", DefaultFamilyCSVPath)
	absCSV, err := filepath.Abs(csvPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for family csv '%s': %w", csvPath, err)
	}

	dbPath, err := absOrEmpty(os.Getenv("DATABASE_PATH"))
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	lineagePath, err := absOrEmpty(os.Getenv("LINEAGE_PATH"))
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for lineage poem: %w", err)
	}

	cfg := Config{
		FamilyCSVPath:      absCSV,
		DatabasePath:       dbPath,
		SnapshotPath:       getEnvOrDefault("SNAPSHOT_PATH", DefaultSnapshotPath),
		LineagePath:        lineagePath,
		Port:               getEnvOrDefault("PORT", DefaultPort),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		DefaultMaxDepth:    getEnvIntOrDefault("DEFAULT_MAX_DEPTH", defaultMaxDepth),
		LogJSON:            getEnvBoolOrDefault("LOG_JSON", false),
	}

	return cfg, nil
}
