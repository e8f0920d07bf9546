package spacedrep

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality is the self-assessed recall score given after attempting a problem.
// The 0-5 scale and the success boundary at 3 are shared with the CLI.
type Quality int

const (
	Blackout      Quality = iota // Could not even start.
	Incorrect                    // Wrong, remembered after seeing the solution.
	IncorrectEasy                // Wrong, but the solution seemed easy.
	Hard                         // Correct with serious difficulty.
	Good                         // Correct after some hesitation.
	Perfect                      // Easy, perfect recall.
)

// PassingQuality is the lowest score that counts as a successful review.
const PassingQuality = Hard

var qualityNames = [...]string{
	Blackout:      "Blackout",
	Incorrect:     "Incorrect",
	IncorrectEasy: "IncorrectEasy",
	Hard:          "Hard",
	Good:          "Good",
	Perfect:       "Perfect",
}

var qualityDescriptions = [...]string{
	Blackout:      "Complete blackout (couldn't even start)",
	Incorrect:     "Incorrect, remembered after seeing solution",
	IncorrectEasy: "Incorrect, but solution seemed easy",
	Hard:          "Correct with serious difficulty",
	Good:          "Correct after some hesitation",
	Perfect:       "Perfect! Easy recall",
}

// AllQualities returns the scale in ascending order.
func AllQualities() []Quality {
	return []Quality{Blackout, Incorrect, IncorrectEasy, Hard, Good, Perfect}
}

// IsValid reports whether q is on the 0-5 scale.
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

// IsSuccess reports whether q counts as a successful recall.
func (q Quality) IsSuccess() bool {
	return q >= PassingQuality
}

// String returns the quality name, or "Quality(n)" for values off the scale.
func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// Describe returns the human label shown next to the score in prompts.
func (q Quality) Describe() string {
	if q.IsValid() {
		return qualityDescriptions[q]
	}
	return q.String()
}

// ParseQuality parses a numeric score ("0".."5") or an answer word
// ("again", "hard", "good", "easy").
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		q := Quality(n)
		if !q.IsValid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidQuality, n)
		}
		return q, nil
	}
	if q, ok := answerQualities[strings.ToLower(s)]; ok {
		return q, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
}

var answerQualities = map[string]Quality{
	"again": Incorrect,
	"hard":  Hard,
	"good":  Good,
	"easy":  Perfect,
}

// QualityFromAnswer maps a quick answer word to a score. Unknown words
// count as Hard, the passing score that keeps intervals short.
func QualityFromAnswer(answer string) Quality {
	if q, ok := answerQualities[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return q
	}
	return Hard
}
