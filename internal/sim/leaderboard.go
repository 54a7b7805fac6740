package sim

import (
	"math"
	"sort"

	"github.com/xtding233/flamesim/internal/flame"
)

// TrialResult is one scored flame.
type TrialResult struct {
	Flame flame.Flame
	Score float64
}

// Leaderboard keeps the K highest-scoring results, best first.
// Equal scores keep arrival order. It is not safe for concurrent use;
// Aggregator guards the shared one.
type Leaderboard struct {
	k       int
	entries []TrialResult
}

func NewLeaderboard(k int) *Leaderboard {
	if k < 0 {
		k = 0
	}
	return &Leaderboard{k: k, entries: make([]TrialResult, 0, k)}
}

// Offer inserts r if the board has room or r beats the current K-th best.
func (lb *Leaderboard) Offer(r TrialResult) bool {
	if lb.k == 0 {
		return false
	}
	n := len(lb.entries)
	if n == lb.k && r.Score <= lb.entries[n-1].Score {
		return false
	}
	// first slot whose score is strictly lower keeps ties in arrival order
	i := sort.Search(n, func(i int) bool { return lb.entries[i].Score < r.Score })
	if n < lb.k {
		lb.entries = append(lb.entries, TrialResult{})
	}
	copy(lb.entries[i+1:], lb.entries[i:len(lb.entries)-1])
	lb.entries[i] = r
	return true
}

// Floor is the score a result must exceed to enter a full board, or -Inf
// while the board still has room.
func (lb *Leaderboard) Floor() float64 {
	if lb.k == 0 {
		return math.Inf(1)
	}
	if len(lb.entries) < lb.k {
		return math.Inf(-1)
	}
	return lb.entries[len(lb.entries)-1].Score
}

func (lb *Leaderboard) Len() int { return len(lb.entries) }
func (lb *Leaderboard) Cap() int { return lb.k }

// Entries returns a copy, best first.
func (lb *Leaderboard) Entries() []TrialResult {
	return append([]TrialResult(nil), lb.entries...)
}

// Reset empties the board and keeps its capacity.
func (lb *Leaderboard) Reset() { lb.entries = lb.entries[:0] }

// Merge offers every entry of other, stopping once nothing more can qualify.
func (lb *Leaderboard) Merge(other *Leaderboard) {
	if other == nil {
		return
	}
	for _, r := range other.entries {
		if !lb.Offer(r) && len(lb.entries) == lb.k {
			// other is sorted: the rest score no higher
			return
		}
	}
}
