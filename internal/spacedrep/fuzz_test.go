package spacedrep

import (
	"math"
	"testing"
)

func FuzzCompute(f *testing.F) {
	f.Add(0, 2.5, 0, 4)
	f.Add(5, 2.5, 30, 0)
	f.Add(3, 1.3, 16, 3)
	f.Add(12, 3.1, 400, 5)

	f.Fuzz(func(t *testing.T, rep int, ef float64, interval int, q int) {
		if rep < 0 || rep > 1000 || interval < 0 || interval > 36500 {
			t.Skip()
		}
		if math.IsNaN(ef) || ef < MinEaseFactor || ef > 10 {
			t.Skip()
		}
		qual := Quality(q)
		res, err := Compute(qual, State{Repetition: rep, EaseFactor: ef, IntervalDays: interval}, today)
		if !qual.IsValid() {
			if err == nil {
				t.Fatalf("Compute(%d) accepted an invalid quality", q)
			}
			return
		}
		if err != nil {
			t.Fatalf("Compute error: %v", err)
		}
		if res.EaseFactor < MinEaseFactor {
			t.Errorf("EaseFactor %v below floor", res.EaseFactor)
		}
		if res.IntervalDays < 1 {
			t.Errorf("IntervalDays %d below 1", res.IntervalDays)
		}
		if res.NextReview != today.AddDays(res.IntervalDays) {
			t.Errorf("NextReview %s != today + %d", res.NextReview, res.IntervalDays)
		}
		if !qual.IsSuccess() && (res.Repetition != 0 || res.IntervalDays != 1) {
			t.Errorf("failure kept rep=%d interval=%d", res.Repetition, res.IntervalDays)
		}
	})
}
