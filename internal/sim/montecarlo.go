package sim

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xtding233/flamesim/internal/flame"
)

var ErrInvalidParams = errors.New("invalid simulation params")

// DefaultChunkSize is the number of trials a worker runs per RNG stream.
const DefaultChunkSize = 4096

// Roller generates one flame from a random source.
type Roller interface {
	Roll(rng flame.RandomSource) flame.Flame
}

// Evaluator reduces a stat vector to a flamescore.
type Evaluator interface {
	Score(v flame.StatVector) float64
}

// Params describes one batch.
type Params struct {
	Trials int64
	Keep   float64 // a trial qualifies when its score is >= Keep
	Top    int     // leaderboard size

	// Seed and chunk index select each chunk's RNG stream, so a batch is
	// reproducible for a given Seed and ChunkSize whatever the worker count.
	Seed      uint64
	Workers   int // <=0 means runtime.NumCPU()
	ChunkSize int // <=0 means DefaultChunkSize
}

func (p Params) validate() error {
	var errs []error
	if p.Trials < 0 {
		errs = append(errs, fmt.Errorf("%w: trials must be >= 0 (got %d)", ErrInvalidParams, p.Trials))
	}
	if p.Top < 0 {
		errs = append(errs, fmt.Errorf("%w: top must be >= 0 (got %d)", ErrInvalidParams, p.Top))
	}
	return errors.Join(errs...)
}

// Result summarizes a finished batch.
type Result struct {
	Trials     int64
	Qualifying int64
	Keep       float64
	Top        []TrialResult
	Scores     Stats
	Seed       uint64
	Workers    int
	Elapsed    time.Duration
}

// Estimate derives attempt statistics from the result's counters.
func (r *Result) Estimate() Estimate {
	return Estimate{Trials: r.Trials, Qualifying: r.Qualifying}
}

// Runner executes a batch of independent trials on a worker pool.
type Runner struct {
	params Params
	roller Roller
	eval   Evaluator
	agg    atomic.Pointer[Aggregator] // replaced at the start of every Run
}

// NewRunner validates params and applies defaults.
func NewRunner(p Params, roller Roller, eval Evaluator) (*Runner, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if roller == nil || eval == nil {
		return nil, fmt.Errorf("%w: roller and evaluator are required", ErrInvalidParams)
	}
	if p.ChunkSize <= 0 {
		p.ChunkSize = DefaultChunkSize
	}
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	r := &Runner{params: p, roller: roller, eval: eval}
	r.agg.Store(NewAggregator(p.Keep, p.Top))
	return r, nil
}

// Completed reports finished trials; safe to call while Run is in progress.
func (r *Runner) Completed() int64 { return r.agg.Load().Completed() }

// Total is the number of trials the batch will run.
func (r *Runner) Total() int64 { return r.params.Trials }

// Run executes every trial and blocks until the batch is complete.
// Each call starts from empty counters, so repeated runs return the same result.
func (r *Runner) Run() *Result {
	start := time.Now()
	p := r.params
	agg := NewAggregator(p.Keep, p.Top)
	r.agg.Store(agg)
	chunkSize := int64(p.ChunkSize)
	chunks := (p.Trials + chunkSize - 1) / chunkSize

	workers := p.Workers
	if int64(workers) > chunks {
		workers = int(chunks)
	}

	jobs := make(chan int64, workers)
	accs := make([]accumulator, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			local := NewLeaderboard(p.Top)
			for c := range jobs {
				lo := c * chunkSize
				hi := min(lo+chunkSize, p.Trials)
				rng := flame.NewSeededRNG(p.Seed, uint64(c))
				var qualifying int64
				for i := lo; i < hi; i++ {
					f := r.roller.Roll(rng)
					score := r.eval.Score(f.Stats)
					if score >= p.Keep {
						qualifying++
					}
					accs[w].add(score)
					if score > local.Floor() {
						local.Offer(TrialResult{Flame: f, Score: score})
					}
				}
				agg.Merge(local, qualifying, hi-lo)
				local.Reset()
			}
		}(w)
	}

	for c := int64(0); c < chunks; c++ {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	var total accumulator
	for _, a := range accs {
		total.merge(a)
	}
	return &Result{
		Trials:     p.Trials,
		Qualifying: agg.Qualifying(),
		Keep:       agg.Keep(),
		Top:        agg.Top(),
		Scores:     total.stats(),
		Seed:       p.Seed,
		Workers:    workers,
		Elapsed:    time.Since(start),
	}
}

// RunMonteCarlo builds a Runner and executes the batch.
func RunMonteCarlo(p Params, roller Roller, eval Evaluator) (*Result, error) {
	r, err := NewRunner(p, roller, eval)
	if err != nil {
		return nil, err
	}
	return r.Run(), nil
}
