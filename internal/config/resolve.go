// resolve.go
package config

import "github.com/xtding233/flamesim/internal/flame"

// Resolve validates cfg and returns the scoring coefficients.
func Resolve(cfg RawConfig) (flame.Coefficients, error) {
	if err := ValidateRaw(cfg); err != nil {
		return flame.Coefficients{}, err
	}
	return flame.Coefficients{
		AllStat:      *cfg.AllStat,
		AllStatXenon: *cfg.AllStatXenon,
		SubStat:      *cfg.SubStat,
		Att:          *cfg.Att,
		AttDA:        *cfg.AttDA,
		AttXenon:     *cfg.AttXenon,
		HPMP:         *cfg.HPMP,
	}, nil
}

// ResolvePrices maps the prices section onto flame types. Call after ValidateRaw.
func ResolvePrices(cfg RawConfig) (map[flame.FlameType]int64, error) {
	out := make(map[flame.FlameType]int64, len(cfg.Prices))
	for name, mesos := range cfg.Prices {
		t, err := flame.ParseFlameType(name)
		if err != nil {
			return nil, err
		}
		out[t] = mesos
	}
	return out, nil
}
