package logger

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"
)

// Config is the LOG_* block shared by the server and the postad CLI. Empty
// fields take the binary's defaults.
type Config struct {
	Level      string `yaml:"log_level" env:"LOG_LEVEL"`
	Format     string `yaml:"log_format" env:"LOG_FORMAT"`
	OutputFile string `yaml:"log_output_file" env:"LOG_OUTPUT_FILE"`
}

var (
	// ServerDefaults writes JSON at info to stdout.
	ServerDefaults = Config{Level: "info", Format: "json", OutputFile: "stdout"}
	// CLIDefaults keeps stdout free for command output.
	CLIDefaults = Config{Level: "warn", Format: "console", OutputFile: "stderr"}
)

// FromEnv reads the LOG_* variables over defaults.
func FromEnv(defaults Config) (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return defaults, fmt.Errorf("read logger config: %w", err)
	}
	return c.WithDefaults(defaults), nil
}

// WithDefaults fills empty fields from d and lower-cases level and format.
func (c Config) WithDefaults(d Config) Config {
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.OutputFile == "" {
		c.OutputFile = d.OutputFile
	}
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	return c
}

// ZapLevel parses Level. Unknown values log at info.
func (c Config) ZapLevel() zapcore.Level {
	if c.Level == "warning" {
		return zapcore.WarnLevel
	}
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
