package sim

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func scored(s float64) TrialResult { return TrialResult{Score: s} }

func TestLeaderboardKeepsTopK(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, k := range []int{1, 5, 50} {
		lb := NewLeaderboard(k)
		var all []float64
		for i := 0; i < 2000; i++ {
			s := float64(rng.IntN(300))
			all = append(all, s)
			lb.Offer(scored(s))
			if lb.Len() > lb.Cap() {
				t.Fatalf("k=%d: board grew to %d", lb.Cap(), lb.Len())
			}
		}
		got := lb.Entries()
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Fatalf("k=%d: not sorted at %d: %v > %v", k, i, got[i].Score, got[i-1].Score)
			}
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(all)))
		for i := range got {
			if got[i].Score != all[i] {
				t.Fatalf("k=%d: entry %d = %v, want %v", k, i, got[i].Score, all[i])
			}
		}
	}
}

func TestLeaderboardTiesKeepArrivalOrder(t *testing.T) {
	lb := NewLeaderboard(3)
	a := TrialResult{Score: 10}
	a.Flame.N = 1
	b := TrialResult{Score: 10}
	b.Flame.N = 2
	lb.Offer(a)
	lb.Offer(b)
	lb.Offer(scored(12))
	got := lb.Entries()
	if got[0].Score != 12 || got[1].Flame.N != 1 || got[2].Flame.N != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
	// equal to the floor on a full board is rejected
	if lb.Offer(scored(10)) {
		t.Fatalf("tie with the K-th best must not enter a full board")
	}
}

func TestLeaderboardZeroCapacity(t *testing.T) {
	lb := NewLeaderboard(0)
	if lb.Offer(scored(1e9)) {
		t.Fatalf("zero-capacity board accepted an entry")
	}
	if lb.Len() != 0 {
		t.Fatalf("len = %d", lb.Len())
	}
}

func TestLeaderboardMerge(t *testing.T) {
	a, b := NewLeaderboard(4), NewLeaderboard(4)
	for _, s := range []float64{9, 7, 5, 3} {
		a.Offer(scored(s))
	}
	for _, s := range []float64{8, 6, 1} {
		b.Offer(scored(s))
	}
	a.Merge(b)
	want := []float64{9, 8, 7, 6}
	got := a.Entries()
	if len(got) != len(want) {
		t.Fatalf("len %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Score != want[i] {
			t.Fatalf("entry %d = %v, want %v", i, got[i].Score, want[i])
		}
	}
}
