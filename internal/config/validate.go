package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/xtding233/flamesim/internal/flame"
	"github.com/xtding233/flamesim/internal/logger"
)

// ValidateRaw checks that every coefficient is present and sane, naming each offending field.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	for _, f := range cfg.Coefficients.fields() {
		v := *f.ptr
		switch {
		case v == nil:
			errs = append(errs, f.key+" is required")
		case math.IsNaN(*v) || math.IsInf(*v, 0):
			errs = append(errs, f.key+" must be a finite number")
		case *v < 0:
			errs = append(errs, f.key+" must be >= 0")
		}
	}
	// hpmp is a divisor
	if cfg.HPMP != nil && *cfg.HPMP == 0 {
		errs = append(errs, "hpmp must be > 0")
	}

	if cfg.Logging != nil {
		if err := cfg.Logging.Validate(); err != nil {
			errs = append(errs, "logging: "+err.Error())
		}
	}

	for name, mesos := range cfg.Prices {
		if _, err := flame.ParseFlameType(name); err != nil {
			errs = append(errs, fmt.Sprintf("prices.%s: unknown flame type", name))
			continue
		}
		if mesos < 0 {
			errs = append(errs, fmt.Sprintf("prices.%s must be >= 0", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LoggingOrDefault returns the logging section, falling back to logger defaults.
func (cfg RawConfig) LoggingOrDefault() logger.Config {
	if cfg.Logging == nil {
		return logger.DefaultConfig()
	}
	return *cfg.Logging
}
