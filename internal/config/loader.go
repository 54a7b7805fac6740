package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up next to the executable when no path is given.
const DefaultFileName = "flame_values.json"

// EnvPrefix prefixes coefficient overrides, e.g. FLAMESIM_ALLSTAT=9.
const EnvPrefix = "FLAMESIM_"

var ErrConfigNotFound = errors.New("config file not found")

// DefaultPath returns DefaultFileName in the executable's directory.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}

// Loader reads a config file and applies environment overrides.
type Loader struct {
	Getenv func(string) string // defaults to os.Getenv
}

// NewLoader creates a loader reading overrides from the process environment.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// Load reads path (YAML or JSON) and applies FLAMESIM_* overrides.
// It returns the raw config without validation.
func (l *Loader) Load(path string) (RawConfig, error) {
	cfg, err := readFile(path)
	if err != nil {
		return RawConfig{}, err
	}
	if err := l.applyEnv(&cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// readFile loads a YAML/JSON file into RawConfig. yaml.v3 reads JSON as well.
func readFile(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return RawConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides coefficients from FLAMESIM_<KEY> variables.
func (l *Loader) applyEnv(cfg *RawConfig) error {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, f := range cfg.Coefficients.fields() {
		name := EnvPrefix + strings.ToUpper(f.key)
		raw := getenv(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", name, raw)
		}
		*f.ptr = &v
	}
	return nil
}
