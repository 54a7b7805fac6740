package sim

import "math"

// Estimate derives attempt statistics from a batch's counters.
type Estimate struct {
	Trials     int64
	Qualifying int64
}

// SuccessRate is the per-flame probability of reaching the keep threshold.
func (e Estimate) SuccessRate() float64 {
	if e.Trials <= 0 || e.Qualifying <= 0 {
		return 0
	}
	return float64(e.Qualifying) / float64(e.Trials)
}

// AverageAttempts is the expected number of flames per qualifying result.
// ok is false when no trial qualified.
func (e Estimate) AverageAttempts() (avg float64, ok bool) {
	if e.Qualifying <= 0 {
		return 0, false
	}
	return float64(e.Trials) / float64(e.Qualifying), true
}

// ChanceWithin is the probability of at least one qualifying flame in n attempts: 1-(1-p)^n.
func (e Estimate) ChanceWithin(n int64) float64 {
	p := e.SuccessRate()
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	// expm1/log1p keep precision for tiny p and large n
	return -math.Expm1(float64(n) * math.Log1p(-p))
}
