package spacedrep

// Fixed points of the SM-2 interval sequence, in days.
const (
	// FirstInterval follows the first successful review and every failure.
	FirstInterval = 1
	// SecondInterval follows the second consecutive success.
	SecondInterval = 6
)

// Ease factor bounds.
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// easeDelta is the SM-2 ease adjustment for a quality score:
// +0.10 at 5, 0 at 4, -0.14 at 3, -0.32 at 2, -0.54 at 1, -0.80 at 0.
func easeDelta(q Quality) float64 {
	miss := float64(Perfect - q)
	return 0.1 - miss*(0.08+miss*0.02)
}
