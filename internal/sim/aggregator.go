package sim

import (
	"math"
	"sync"
	"sync/atomic"
)

// Aggregator holds the batch-wide threshold counter and leaderboard.
// Counters are atomic; the leaderboard is guarded by mu and only locked
// when a result can beat the current floor.
type Aggregator struct {
	keep       float64
	qualifying atomic.Int64
	completed  atomic.Int64

	mu    sync.Mutex
	top   *Leaderboard
	floor atomic.Uint64 // math.Float64bits of top.Floor()
}

func NewAggregator(keep float64, k int) *Aggregator {
	a := &Aggregator{keep: keep, top: NewLeaderboard(k)}
	a.floor.Store(math.Float64bits(a.top.Floor()))
	return a
}

// Keep is the qualifying score threshold.
func (a *Aggregator) Keep() float64 { return a.keep }

// Submit records one trial.
func (a *Aggregator) Submit(r TrialResult) {
	if r.Score >= a.keep {
		a.qualifying.Add(1)
	}
	a.completed.Add(1)
	if r.Score <= math.Float64frombits(a.floor.Load()) {
		return
	}
	a.mu.Lock()
	a.top.Offer(r)
	a.floor.Store(math.Float64bits(a.top.Floor()))
	a.mu.Unlock()
}

// Merge folds a worker's local leaderboard and counters into the batch.
func (a *Aggregator) Merge(local *Leaderboard, qualifying, completed int64) {
	a.qualifying.Add(qualifying)
	a.completed.Add(completed)
	if local == nil || local.Len() == 0 {
		return
	}
	if local.entries[0].Score <= math.Float64frombits(a.floor.Load()) {
		return
	}
	a.mu.Lock()
	a.top.Merge(local)
	a.floor.Store(math.Float64bits(a.top.Floor()))
	a.mu.Unlock()
}

func (a *Aggregator) Qualifying() int64 { return a.qualifying.Load() }

// Completed is safe to poll from a progress observer.
func (a *Aggregator) Completed() int64 { return a.completed.Load() }

// Top returns the leaderboard, best first.
func (a *Aggregator) Top() []TrialResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.top.Entries()
}
