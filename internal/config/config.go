// Package config reads converter defaults from the environment and an
// optional .env file. Command-line flags take precedence over these values.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSheet       = "AITC_SHEET"
	EnvInferSingle = "AITC_INFER_SINGLE"
	EnvDialect     = "AITC_DIALECT"
	EnvFormat      = "AITC_FORMAT"
	EnvLogLevel    = "LOG_LEVEL"
)

// Defaults.
const (
	DefaultDialect  = "generic"
	DefaultFormat   = "json"
	DefaultLogLevel = "info"
)

// Config holds the converter settings.
type Config struct {
	Sheet       string
	InferSingle bool
	Dialect     string
	Format      string
	LogLevel    string
}

// Load reads .env from the working directory, if present, then the
// environment. Variables already set in the environment are not
// overridden by the file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Sheet:       getEnvOrDefault(EnvSheet, ""),
		InferSingle: getEnvBoolOrDefault(EnvInferSingle, false),
		Dialect:     getEnvOrDefault(EnvDialect, DefaultDialect),
		Format:      getEnvOrDefault(EnvFormat, DefaultFormat),
		LogLevel:    getEnvOrDefault(EnvLogLevel, DefaultLogLevel),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
