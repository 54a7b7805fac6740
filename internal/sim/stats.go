package sim

import "math"

// Stats summarizes the scores of a batch.
type Stats struct {
	Count  int64
	Mean   float64
	Var    float64 // population variance
	StdDev float64
	Min    float64
	Max    float64
}

// accumulator is a mergeable running mean/variance (Welford, Chan et al. for merges).
type accumulator struct {
	n        int64
	mean, m2 float64
	min, max float64
}

func (a *accumulator) add(x float64) {
	if a.n == 0 {
		a.min, a.max = x, x
	} else {
		a.min = math.Min(a.min, x)
		a.max = math.Max(a.max, x)
	}
	a.n++
	d := x - a.mean
	a.mean += d / float64(a.n)
	a.m2 += d * (x - a.mean)
}

func (a *accumulator) merge(b accumulator) {
	if b.n == 0 {
		return
	}
	if a.n == 0 {
		*a = b
		return
	}
	n := a.n + b.n
	d := b.mean - a.mean
	a.mean += d * float64(b.n) / float64(n)
	a.m2 += b.m2 + d*d*float64(a.n)*float64(b.n)/float64(n)
	a.min = math.Min(a.min, b.min)
	a.max = math.Max(a.max, b.max)
	a.n = n
}

func (a *accumulator) stats() Stats {
	if a.n == 0 {
		return Stats{}
	}
	variance := a.m2 / float64(a.n)
	return Stats{
		Count:  a.n,
		Mean:   a.mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		Min:    a.min,
		Max:    a.max,
	}
}
