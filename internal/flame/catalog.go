package flame

import (
	"fmt"
	"sync"
)

// NumTiers is the number of magnitude levels every line can take.
const NumTiers = 7

// LineOption is one catalog entry: a line and its tier values.
type LineOption struct {
	Name  LineName
	Tiers [NumTiers]int
}

// Catalog holds the 19 line options of one level bracket. It is read-only
// once built and safe to share between goroutines.
type Catalog struct {
	Bracket Bracket
	options [NumLines]LineOption
}

// Options returns a copy of every line option in catalog order.
func (c *Catalog) Options() []LineOption {
	out := make([]LineOption, NumLines)
	copy(out, c.options[:])
	return out
}

// Lookup returns the option for a line name.
func (c *Catalog) Lookup(name LineName) (LineOption, bool) {
	if name < 0 || name >= NumLines {
		return LineOption{}, false
	}
	return c.options[name], true
}

// tier 1 values per line category; tier i is base*(i+1)
type bracketBase struct {
	flat, combo, hpmp, basic int
}

var bracketBases = [numBrackets]bracketBase{
	Bracket100: {flat: 6, combo: 3, hpmp: 300, basic: 1},
	Bracket110: {flat: 6, combo: 3, hpmp: 330, basic: 1},
	Bracket120: {flat: 7, combo: 4, hpmp: 360, basic: 1},
	Bracket130: {flat: 7, combo: 4, hpmp: 390, basic: 1},
	Bracket140: {flat: 8, combo: 4, hpmp: 420, basic: 1},
	Bracket150: {flat: 8, combo: 4, hpmp: 450, basic: 1},
	Bracket160: {flat: 9, combo: 5, hpmp: 480, basic: 1},
	Bracket170: {flat: 9, combo: 5, hpmp: 510, basic: 1},
	Bracket180: {flat: 10, combo: 5, hpmp: 540, basic: 1},
	Bracket190: {flat: 10, combo: 5, hpmp: 570, basic: 1},
	Bracket200: {flat: 11, combo: 6, hpmp: 600, basic: 1},
	Bracket250: {flat: 12, combo: 7, hpmp: 700, basic: 1},
}

var (
	catalogMu    sync.RWMutex
	catalogCache = make(map[Bracket]*Catalog)
)

// CatalogFor returns the catalog for a bracket, building it on first use.
func CatalogFor(b Bracket) (*Catalog, error) {
	if !b.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBracket, b)
	}

	catalogMu.RLock()
	if c, ok := catalogCache[b]; ok {
		catalogMu.RUnlock()
		return c, nil
	}
	catalogMu.RUnlock()

	c := buildCatalog(b)

	catalogMu.Lock()
	defer catalogMu.Unlock()
	if cached, ok := catalogCache[b]; ok {
		return cached, nil
	}
	catalogCache[b] = c
	return c, nil
}

func buildCatalog(b Bracket) *Catalog {
	base := bracketBases[b]
	c := &Catalog{Bracket: b}
	for i := range c.options {
		name := LineName(i)
		var step int
		switch lineTable[name].kind {
		case kindFlat:
			step = base.flat
		case kindCombo:
			step = base.combo
		case kindHPMP:
			step = base.hpmp
		case kindBasic:
			step = base.basic
		}
		opt := LineOption{Name: name}
		for t := range opt.Tiers {
			opt.Tiers[t] = step * (t + 1)
		}
		c.options[i] = opt
	}
	return c
}
