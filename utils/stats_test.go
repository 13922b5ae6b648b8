package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 100, 0)
	if s.AveragePopulation != 100 || s.PeakPopulation != 100 {
		t.Fatalf("first update: avg=%v peak=%d", s.AveragePopulation, s.PeakPopulation)
	}

	s.Update(1, 200, 100*time.Millisecond)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.PeakPopulation != 200 || s.TotalGenerations != 1 {
		t.Fatalf("peak=%d total=%d", s.PeakPopulation, s.TotalGenerations)
	}

	s.Update(2, 50, 0)
	if s.PeakPopulation != 200 {
		t.Fatalf("peak should not drop, got %d", s.PeakPopulation)
	}
}
