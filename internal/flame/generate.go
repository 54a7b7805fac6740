package flame

import "fmt"

// Line is one rolled line of a flame.
type Line struct {
	Name  LineName
	Tier  int // 0-based index into LineOption.Tiers
	Value int
}

// Flame is the outcome of one trial: the rolled lines and their sum per slot.
type Flame struct {
	Lines [BossLines]Line
	N     int // number of valid entries in Lines
	Stats StatVector
}

// Rolled returns the rolled lines.
func (f Flame) Rolled() []Line { return f.Lines[:f.N] }

// Generator rolls flames for one catalog, flame type and boss mode.
// It holds no mutable state, so one Generator serves every worker.
type Generator struct {
	catalog   *Catalog
	flameType FlameType
	boss      bool
	tiers     *Sampler
	lineCount *Sampler // nil in boss mode
}

// NewGenerator builds the tier and line-count samplers for a run.
func NewGenerator(cat *Catalog, t FlameType, boss bool) (*Generator, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrUnknownBracket)
	}
	weights, err := WeightsFor(t)
	if err != nil {
		return nil, err
	}
	tiers, err := NewSampler(weights.Active(boss))
	if err != nil {
		return nil, fmt.Errorf("flame type %s: %w", t, err)
	}
	g := &Generator{catalog: cat, flameType: t, boss: boss, tiers: tiers}
	if !boss {
		g.lineCount, err = NewSampler(LineCountWeights[:])
		if err != nil {
			return nil, fmt.Errorf("line count: %w", err)
		}
	}
	return g, nil
}

func (g *Generator) FlameType() FlameType { return g.flameType }
func (g *Generator) Boss() bool           { return g.boss }
func (g *Generator) Catalog() *Catalog    { return g.catalog }

// Roll generates one flame:
// - pick the line count (4 for boss flames, weighted 1..4 otherwise)
// - choose that many distinct lines uniformly from the catalog
// - draw a tier for each line from the active tier weights
// - add the tier value to every slot the line feeds
func (g *Generator) Roll(rng RandomSource) Flame {
	lines := BossLines
	if g.lineCount != nil {
		lines = g.lineCount.Draw(rng) + 1
	}

	var idx [NumLines]LineName
	for i := range idx {
		idx[i] = LineName(i)
	}

	var f Flame
	for i := 0; i < lines; i++ {
		// partial Fisher-Yates: idx[:i] holds the lines already drawn
		j := i + rng.IntN(int(NumLines)-i)
		idx[i], idx[j] = idx[j], idx[i]

		opt := g.catalog.options[idx[i]]
		tier := g.tiers.Draw(rng)
		value := opt.Tiers[tier]
		for _, s := range opt.Name.Slots() {
			f.Stats[s] += value
		}
		f.Lines[i] = Line{Name: opt.Name, Tier: tier, Value: value}
	}
	f.N = lines
	return f
}
