package logger

import (
	"os"
	"strconv"
	"strings"
)

// NewLogger builds a logger from cfg after applying environment overrides.
func NewLogger(cfg LoggerConfig) (Logger, error) {
	return NewZapLogger(ApplyEnv(cfg))
}

// NewLoggerWithComponent creates a logger with a component field pre-set
func NewLoggerWithComponent(cfg LoggerConfig, component string) (Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	return logger.With(Field{Key: "component", Value: component}), nil
}

// ApplyEnv overrides cfg with the PONG_LOG_* environment variables.
// PONG_ENV=production turns off development mode and switches to JSON;
// level and sampling keep their configured values.
func ApplyEnv(cfg LoggerConfig) LoggerConfig {
	if strings.ToLower(os.Getenv("PONG_ENV")) == "production" {
		cfg.Development = false
		cfg.Format = "json"
	}

	if level := os.Getenv("PONG_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}

	if format := os.Getenv("PONG_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}

	if sampling := os.Getenv("PONG_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}

	if initial := os.Getenv("PONG_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}

	if thereafter := os.Getenv("PONG_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}

	if dev := os.Getenv("PONG_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}

	return cfg
}
