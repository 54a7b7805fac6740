package flame

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeights = errors.New("invalid weights; need non-negative finite values with a positive sum")

// Sampler draws an index with probability proportional to its weight.
// The cumulative table is built once so a draw is one Float64 and a short scan.
type Sampler struct {
	cum   []float64
	total float64
}

// NewSampler validates weights and precomputes the cumulative table.
func NewSampler(weights []float64) (*Sampler, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	cum := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += w
		cum[i] = acc
	}
	return &Sampler{cum: cum, total: acc}, nil
}

// Draw returns an index in [0, len(weights)). Zero-weight indices are never returned.
func (s *Sampler) Draw(rng RandomSource) int {
	r := rng.Float64() * s.total
	for i, c := range s.cum {
		if r < c {
			return i
		}
	}
	// r landed on total through rounding: take the last positive slot
	for i := len(s.cum) - 1; i > 0; i-- {
		if s.cum[i] > s.cum[i-1] {
			return i
		}
	}
	return 0
}

func validateWeights(weights []float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weights[%d]=%v", ErrInvalidWeights, i, w)
		}
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("%w: sum is %v", ErrInvalidWeights, sum)
	}
	return nil
}
