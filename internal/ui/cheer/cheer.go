// Package cheer holds the encouragement lines printed after a review.
package cheer

import (
	"math/rand/v2"

	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
)

var (
	perfect = []string{
		"🏆 PERFECT! Flawless recall, you own this one!",
		"🏆 NAILED IT! That's muscle memory right there!",
		"🏆 PERFECT SCORE! This problem fears you now.",
	}
	good = []string{
		"✨ Great job! Solid recall, keep it up!",
		"✨ Nice work! You're getting sharper every day.",
		"✨ Well done! That one's becoming second nature.",
	}
	hard = []string{
		"💪 Good fight! You pushed through and that's what matters.",
		"💪 Battled through it! Next time will be smoother.",
		"💪 Got it done! Persistence is the key.",
	}
	failed = []string{
		"📖 No worries, it'll stick next time. Review is the whole point!",
		"📖 This is how learning works. You'll crush it tomorrow.",
		"📖 Not yet, but your brain is wiring it. Come back stronger!",
	}
)

// Tips are study hints shown now and then after a review.
var Tips = []string{
	"💡 Tip: Problems rated 0-2 reset to tomorrow. Don't fear low scores, they help!",
	"💡 Tip: Use 'dsaprep log' to quickly rate problems without opening the browser.",
	"💡 Tip: Filter by pattern with -p to focus on weak areas.",
	"💡 Tip: The SM-2 algorithm gets smarter the more honest your ratings are.",
	"💡 Tip: Consistency beats intensity. 3 problems daily beats 20 on weekends.",
	"💡 Tip: Score 3 (correct with difficulty) is the sweet spot for learning.",
	"💡 Tip: Use 'dsaprep stats -p Trees' to see all problems in a pattern.",
	"💡 Tip: Can't remember a solution? Score it 0 and it'll come back tomorrow.",
	"💡 Tip: Review overdue problems first, they decay the fastest.",
	"💡 Tip: Use 'dsaprep reset' if you want a completely fresh start.",
}

// TipChance is the probability that Tip returns a hint.
const TipChance = 0.30

// Lines returns the candidate messages for a rating.
func Lines(q spacedrep.Quality) []string {
	switch {
	case q == spacedrep.Perfect:
		return perfect
	case q == spacedrep.Good:
		return good
	case q.IsSuccess():
		return hard
	default:
		return failed
	}
}

// Celebration picks one message for a rating.
func Celebration(r *rand.Rand, q spacedrep.Quality) string {
	lines := Lines(q)
	return lines[r.IntN(len(lines))]
}

// Tip returns a random tip, or "" most of the time so output stays quiet.
func Tip(r *rand.Rand) string {
	if r.Float64() >= TipChance {
		return ""
	}
	return Tips[r.IntN(len(Tips))]
}
