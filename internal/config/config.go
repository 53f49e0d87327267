package config

import (
	"os"
)

type Config struct {
	ResultsDir  string
	ProfilesDir string
	LogLevel    string
	TargetKind  string
	TargetDSN   string
}

func Load() *Config {
	return &Config{
		ResultsDir:  getEnv("FUZZDB_RESULTS_DIR", "./results"),
		ProfilesDir: getEnv("FUZZDB_PROFILES_DIR", "./profiles"),
		LogLevel:    getEnv("FUZZDB_LOG_LEVEL", "info"),
		TargetKind:  getEnv("FUZZDB_TARGET_KIND", "sqlite"),
		TargetDSN:   getEnv("FUZZDB_TARGET_DSN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
