// types.go
package config

import "github.com/xtding233/flamesim/internal/logger"

// Raw config loaded from YAML or JSON. Coefficients sit at the top level so
// a flat flame_values.json file parses as-is.
type RawConfig struct {
	Version      string `yaml:"version,omitempty"`
	Coefficients `yaml:",inline"`
	Logging      *logger.Config   `yaml:"logging,omitempty"`
	Prices       map[string]int64 `yaml:"prices,omitempty"` // flame type -> mesos per flame
	Notes        string           `yaml:"notes,omitempty"`
}

// Coefficients are all required; nil means missing.
type Coefficients struct {
	AllStat      *float64 `yaml:"allstat"`
	AllStatXenon *float64 `yaml:"allstat_x"`
	SubStat      *float64 `yaml:"substat"`
	Att          *float64 `yaml:"att"`
	AttDA        *float64 `yaml:"att_d"`
	AttXenon     *float64 `yaml:"att_x"`
	HPMP         *float64 `yaml:"hpmp"`
}

// fields pairs each config key with its field, in file order.
func (c *Coefficients) fields() []struct {
	key string
	ptr **float64
} {
	return []struct {
		key string
		ptr **float64
	}{
		{"allstat", &c.AllStat},
		{"allstat_x", &c.AllStatXenon},
		{"substat", &c.SubStat},
		{"att", &c.Att},
		{"att_d", &c.AttDA},
		{"att_x", &c.AttXenon},
		{"hpmp", &c.HPMP},
	}
}
