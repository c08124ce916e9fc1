package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/toastdriven/attain/pkg/markov"
)

// Config mirrors the attain.yaml configuration file.
type Config struct {
	DatabasePath string `yaml:"database_path" mapstructure:"database_path"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	MaxSteps     int    `yaml:"max_steps" mapstructure:"max_steps"`
	Punctuation  string `yaml:"punctuation" mapstructure:"punctuation"`
	Sentences    int    `yaml:"sentences" mapstructure:"sentences"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() Config {
	return Config{
		DatabasePath: "./data/attain.db?_journal_mode=WAL&_busy_timeout=5000",
		LogLevel:     "info",
		MaxSteps:     markov.DefaultMaxSteps,
		Punctuation:  markov.DefaultPunctuation,
		Sentences:    1,
	}
}

func setConfigDefaults() {
	def := DefaultConfig()
	viper.SetDefault("database_path", def.DatabasePath)
	viper.SetDefault("log_level", def.LogLevel)
	viper.SetDefault("max_steps", def.MaxSteps)
	viper.SetDefault("punctuation", def.Punctuation)
	viper.SetDefault("sentences", def.Sentences)
}

// writeDefaultConfig writes the default configuration to path with an
// atomic rename. Failure is a warning, not an error: the process can
// still run with in-memory defaults.
func writeDefaultConfig(path string) {
	data, err := yaml.Marshal(DefaultConfig())
	if err == nil {
		err = atomic.WriteFile(path, bytes.NewReader(data))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
	}
}

// logger is the process-wide logger; subcommands pass it down to the
// library types via SetLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func setupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
