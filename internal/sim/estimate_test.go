package sim

import (
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	e := Estimate{Trials: 1000, Qualifying: 10}
	if got := e.SuccessRate(); got != 0.01 {
		t.Fatalf("success rate = %v", got)
	}
	avg, ok := e.AverageAttempts()
	if !ok || avg != 100 {
		t.Fatalf("average attempts = %v, %v", avg, ok)
	}
	want := 1 - math.Pow(0.99, 100)
	if got := e.ChanceWithin(100); math.Abs(got-want) > 1e-12 {
		t.Fatalf("chance within 100 = %v, want %v", got, want)
	}
	if got := e.ChanceWithin(0); got != 0 {
		t.Fatalf("chance within 0 = %v", got)
	}
}

func TestEstimateNoQualifying(t *testing.T) {
	for _, e := range []Estimate{{}, {Trials: 500}} {
		if _, ok := e.AverageAttempts(); ok {
			t.Fatalf("%+v: average attempts should be non-computable", e)
		}
		if e.SuccessRate() != 0 || e.ChanceWithin(1000) != 0 {
			t.Fatalf("%+v: expected zero rate and chance", e)
		}
	}
}

func TestEstimateCertain(t *testing.T) {
	e := Estimate{Trials: 10, Qualifying: 10}
	if got := e.ChanceWithin(3); got != 1 {
		t.Fatalf("chance = %v, want 1", got)
	}
}
