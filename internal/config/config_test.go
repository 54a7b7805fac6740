package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/flamesim/internal/flame"
)

const fullJSON = `{
  "allstat": 8,
  "allstat_x": 20,
  "substat": 0.1,
  "att": 3,
  "att_d": 20,
  "att_x": 6,
  "hpmp": 120
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) string { return "" }

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, DefaultFileName, fullJSON)
	cfg, err := (&Loader{Getenv: noEnv}).Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coeffs, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := flame.Coefficients{AllStat: 8, AllStatXenon: 20, SubStat: 0.1, Att: 3, AttDA: 20, AttXenon: 6, HPMP: 120}
	if coeffs != want {
		t.Fatalf("coefficients = %+v, want %+v", coeffs, want)
	}
}

func TestLoadYAMLWithSections(t *testing.T) {
	content := `
allstat: 9
allstat_x: 21
substat: 0.125
att: 4
att_d: 18
att_x: 7
hpmp: 100
logging:
  level: DEBUG
  format: json
prices:
  pflame: 9120000
  eflame: 0
`
	path := writeFile(t, "flame_values.yaml", content)
	cfg, err := (&Loader{Getenv: noEnv}).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateRaw(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.LoggingOrDefault().Level != "DEBUG" {
		t.Errorf("logging level = %q", cfg.LoggingOrDefault().Level)
	}
	prices, err := ResolvePrices(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if prices[flame.PFlame] != 9120000 || len(prices) != 2 {
		t.Errorf("prices = %v", prices)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "bad.json", `{"allstat": [`)
	if _, err := (&Loader{Getenv: noEnv}).Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateNamesMissingFields(t *testing.T) {
	path := writeFile(t, "partial.json", `{"allstat": 8, "att": 3, "hpmp": 0}`)
	cfg, err := (&Loader{Getenv: noEnv}).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	err = ValidateRaw(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, field := range []string{"allstat_x", "substat", "att_d", "att_x", "hpmp must be > 0"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
	if strings.Contains(err.Error(), "allstat is required") {
		t.Errorf("allstat was set but reported missing: %v", err)
	}
	if _, err := Resolve(cfg); err == nil {
		t.Fatalf("Resolve must refuse an invalid config")
	}
}

func TestValidateUnknownPrice(t *testing.T) {
	path := writeFile(t, "prices.yaml", fullJSON)
	cfg, err := (&Loader{Getenv: noEnv}).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Prices = map[string]int64{"golden": 5}
	if err := ValidateRaw(cfg); err == nil || !strings.Contains(err.Error(), "prices.golden") {
		t.Fatalf("expected prices.golden error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, DefaultFileName, fullJSON)
	env := map[string]string{"FLAMESIM_ALLSTAT": "10", "FLAMESIM_HPMP": "90"}
	l := &Loader{Getenv: func(k string) string { return env[k] }}
	cfg, err := l.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	coeffs, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if coeffs.AllStat != 10 || coeffs.HPMP != 90 || coeffs.Att != 3 {
		t.Fatalf("coefficients = %+v", coeffs)
	}

	env["FLAMESIM_SUBSTAT"] = "lots"
	if _, err := l.Load(path); err == nil || !strings.Contains(err.Error(), "FLAMESIM_SUBSTAT") {
		t.Fatalf("expected FLAMESIM_SUBSTAT error, got %v", err)
	}
}
