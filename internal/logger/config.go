package logger

import (
	"fmt"
	"strings"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"` // console or json
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig logs INFO and above to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		Format:         "console",
		FileEnabled:    false,
		FilePath:       "logs/flamesim.log",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// Validate checks level and format names.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("format must be console or json (got %q)", c.Format)
	}
	if c.FileEnabled && c.FilePath == "" {
		return fmt.Errorf("file_path is required when file_enabled is set")
	}
	return nil
}
