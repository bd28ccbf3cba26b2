package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/matexport/internal/sink"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePaths []string // snapshot files or directories
	Output     string   // "-", a file path, or s3://bucket/key; empty cancels the export

	LogFormat        string
	LogLevel         string
	ResolveCacheSize int

	S3 sink.S3Config
}

// LogValue lists the settings without S3 credentials.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("scene_paths", c.ScenePaths),
		slog.String("output", c.Output),
		slog.String("log_format", c.LogFormat),
		slog.String("log_level", c.LogLevel),
		slog.Int("resolve_cache_size", c.ResolveCacheSize),
		slog.Any("s3", c.S3),
	)
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ScenePaths) == 0 {
		return nil, errors.New("at least one scene snapshot path is required")
	}
	for _, p := range cfg.ScenePaths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.New("scene snapshot paths cannot be empty")
		}
	}
	if cfg.ResolveCacheSize < 0 {
		return nil, fmt.Errorf("resolve cache size cannot be negative, got %d", cfg.ResolveCacheSize)
	}
	return &cfg, nil
}

// LoadEnvFile loads a dotenv file into the process environment. A missing
// file is not an error; variables already set are never overridden.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error accessing env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// S3ConfigFromEnv reads object storage settings from the environment.
func S3ConfigFromEnv() sink.S3Config {
	return sink.S3Config{
		Endpoint:  strings.TrimSpace(os.Getenv("MATEXPORT_S3_ENDPOINT")),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("MATEXPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MATEXPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MATEXPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		UseSSL:    parseBoolDefault(os.Getenv("MATEXPORT_S3_USE_SSL"), true),
	}
}

func parseBoolDefault(raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
