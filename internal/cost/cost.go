package cost

import (
	"github.com/shopspring/decimal"

	"github.com/xtding233/flamesim/internal/flame"
)

// DefaultPrices are mesos per flame for the flame types sold for mesos.
var DefaultPrices = map[flame.FlameType]int64{
	flame.PFlame: 9_120_000,
}

var (
	billion  = decimal.New(1, 9)
	trillion = decimal.New(1, 12)
)

// Table prices flames by type.
type Table struct {
	prices map[flame.FlameType]decimal.Decimal
}

// NewTable starts from DefaultPrices and applies overrides. A zero override
// marks the type as unpriced.
func NewTable(overrides map[flame.FlameType]int64) *Table {
	t := &Table{prices: make(map[flame.FlameType]decimal.Decimal)}
	for ft, mesos := range DefaultPrices {
		t.prices[ft] = decimal.NewFromInt(mesos)
	}
	for ft, mesos := range overrides {
		if mesos <= 0 {
			delete(t.prices, ft)
			continue
		}
		t.prices[ft] = decimal.NewFromInt(mesos)
	}
	return t
}

// Price returns the mesos per flame, ok is false when the type has no meso price.
func (t *Table) Price(ft flame.FlameType) (decimal.Decimal, bool) {
	p, ok := t.prices[ft]
	return p, ok
}

// Cost is the mesos spent on n flames of type ft.
func (t *Table) Cost(ft flame.FlameType, n int64) (decimal.Decimal, bool) {
	p, ok := t.Price(ft)
	if !ok || n <= 0 {
		return decimal.Zero, ok
	}
	return p.Mul(decimal.NewFromInt(n)), true
}

// Format renders mesos in billions ("b"), or trillions ("T") from 1000b up.
func Format(mesos decimal.Decimal) string {
	if mesos.GreaterThanOrEqual(trillion) {
		return mesos.Div(trillion).StringFixed(5) + "T"
	}
	return mesos.Div(billion).StringFixed(5) + "b"
}
