package flame

import "fmt"

// TierWeights is the probability of each tier slot for one flame type.
// Boss flames use slots 0..6, non-boss flames use slots 2..8.
type TierWeights [9]float64

var tierWeightTable = [numFlameTypes]TierWeights{
	Abyss:        {0, 0, 0, 0, 0.63, 0.34, 0.03, 0, 0},
	Totem:        {0, 0, 0.558, 0.325, 0.065, 0.032, 0.02, 0, 0},
	Drop:         {0, 0, 0.25, 0.3, 0.3, 0.14, 0.01, 0, 0},
	PFlame:       {0, 0, 0.2, 0.3, 0.36, 0.14, 0, 0, 0},
	EFlame:       {0, 0, 0, 0.29, 0.45, 0.25, 0.01, 0, 0},
	RegCraft:     {0, 0, 0.5, 0.4, 0.1, 0, 0, 0, 0},
	MasterCraft:  {0, 0, 0.15, 0.3, 0.4, 0.14, 0.01, 0, 0},
	MeisterCraft: {0, 0, 0, 0.19, 0.5, 0.3, 0.01, 0, 0},
	MasterFuse:   {0, 0, 0.25, 0.35, 0.3, 0.1, 0, 0, 0},
	MeisterFuse:  {0, 0, 0, 0.4, 0.45, 0.14, 0.01, 0, 0},
}

// LineCountWeights is the probability of a non-boss flame granting 1, 2, 3 or 4 lines.
var LineCountWeights = [4]float64{0.39, 0.39, 0.18, 0.04}

// BossLines is the line count of every boss flame.
const BossLines = 4

// WeightsFor returns the tier weights of a flame type.
func WeightsFor(t FlameType) (TierWeights, error) {
	if !t.valid() {
		return TierWeights{}, fmt.Errorf("%w: %s", ErrUnknownFlameType, t)
	}
	return tierWeightTable[t], nil
}

// Active returns the weights applied to tiers 0..6.
func (w TierWeights) Active(boss bool) []float64 {
	if boss {
		return append([]float64(nil), w[:NumTiers]...)
	}
	return append([]float64(nil), w[2:]...)
}
