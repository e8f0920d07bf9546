package spacedrep

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	if FirstInterval != 1 {
		t.Errorf("FirstInterval = %d, want 1", FirstInterval)
	}
	if SecondInterval != 6 {
		t.Errorf("SecondInterval = %d, want 6", SecondInterval)
	}
	if MinEaseFactor != 1.3 {
		t.Errorf("MinEaseFactor = %v, want 1.3", MinEaseFactor)
	}
}

func TestEaseDelta_EachQuality(t *testing.T) {
	tests := []struct {
		q    Quality
		want float64
	}{
		{Perfect, 0.10},
		{Good, 0.00},
		{Hard, -0.14},
		{IncorrectEasy, -0.32},
		{Incorrect, -0.54},
		{Blackout, -0.80},
	}
	for _, tt := range tests {
		if got := easeDelta(tt.q); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("easeDelta(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}
