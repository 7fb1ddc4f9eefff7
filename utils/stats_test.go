package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 10 || s.TotalGenerations != 1 {
		t.Fatalf("first update gave %+v", s)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("moving average = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("zero duration changed rate to %v", s.GenerationsPerSecond)
	}
}

func TestTimerStop(t *testing.T) {
	timer := StartTimer("sleep", false)
	time.Sleep(time.Millisecond)
	if elapsed := timer.Stop(); elapsed < time.Millisecond {
		t.Fatalf("timer measured %v, want at least 1ms", elapsed)
	}
}
