package flame

import (
	"math"
	"testing"
)

func newTestGenerator(t *testing.T, b Bracket, ft FlameType, boss bool) *Generator {
	t.Helper()
	cat, err := CatalogFor(b)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGenerator(cat, ft, boss)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRollBossPFlame(t *testing.T) {
	g := newTestGenerator(t, Bracket140, PFlame, true)
	scorer, err := NewScorer(TargetSTR, Coefficients{AllStat: 8, SubStat: 0.1, Att: 3})
	if err != nil {
		t.Fatal(err)
	}
	rng := NewSeededRNG(2024, 0)
	for i := 0; i < 20000; i++ {
		f := g.Roll(rng)
		if f.N != 4 {
			t.Fatalf("boss flame has %d lines, want 4", f.N)
		}
		seen := map[LineName]bool{}
		var want StatVector
		for _, l := range f.Rolled() {
			if seen[l.Name] {
				t.Fatalf("line %s drawn twice in %v", l.Name, f.Rolled())
			}
			seen[l.Name] = true
			if l.Tier < 2 || l.Tier > 5 {
				t.Fatalf("pflame drew zero-weight tier %d", l.Tier)
			}
			opt, _ := g.Catalog().Lookup(l.Name)
			if opt.Tiers[l.Tier] != l.Value {
				t.Fatalf("line %s tier %d value %d, catalog says %d", l.Name, l.Tier, l.Value, opt.Tiers[l.Tier])
			}
			for _, s := range l.Name.Slots() {
				want[s] += l.Value
			}
		}
		if f.Stats != want {
			t.Fatalf("stats %v, want %v", f.Stats, want)
		}
		v := f.Stats
		expected := float64(v[StatAllStat])*8 + float64(v[StatATT])*3 + float64(v[StatSTR]) + float64(v[StatDEX])*0.1
		if got := scorer.Score(v); math.Abs(got-expected) > 1e-9 {
			t.Fatalf("score %v, want %v", got, expected)
		}
	}
}

func TestRollNoBossLineCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	g := newTestGenerator(t, Bracket160, Drop, false)
	const n = 200000
	var counts [5]int
	rng := NewSeededRNG(99, 1)
	for i := 0; i < n; i++ {
		f := g.Roll(rng)
		if f.N < 1 || f.N > 4 {
			t.Fatalf("no-boss flame has %d lines", f.N)
		}
		counts[f.N]++
		for _, l := range f.Rolled() {
			// drop weights shifted by two: slots 2..6 map to tiers 0..4
			if l.Tier > 4 {
				t.Fatalf("no-boss drop flame drew tier %d", l.Tier)
			}
		}
	}
	for k, p := range LineCountWeights {
		freq := float64(counts[k+1]) / n
		if math.Abs(freq-p) > 0.01 {
			t.Errorf("line count %d frequency %f, want ~%f", k+1, freq, p)
		}
	}
}

func TestRollNoBossUsesShiftedTiers(t *testing.T) {
	g := newTestGenerator(t, Bracket140, PFlame, false)
	rng := NewSeededRNG(5, 5)
	for i := 0; i < 20000; i++ {
		for _, l := range g.Roll(rng).Rolled() {
			if l.Tier > 3 {
				t.Fatalf("no-boss pflame drew tier %d, expected 0..3", l.Tier)
			}
		}
	}
}

func TestRollReplicable(t *testing.T) {
	g := newTestGenerator(t, Bracket200, EFlame, true)
	a, b := NewSeededRNG(11, 0), NewSeededRNG(11, 0)
	for i := 0; i < 500; i++ {
		if fa, fb := g.Roll(a), g.Roll(b); fa != fb {
			t.Fatalf("roll %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func TestNewGeneratorErrors(t *testing.T) {
	cat, _ := CatalogFor(Bracket140)
	if _, err := NewGenerator(cat, FlameType(77), true); err == nil {
		t.Fatalf("expected error for unknown flame type")
	}
	if _, err := NewGenerator(nil, PFlame, true); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}
