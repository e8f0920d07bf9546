package spacedrep

import "errors"

// ErrInvalidQuality is returned for scores outside the 0-5 scale.
// Use errors.Is to check: errors.Is(err, spacedrep.ErrInvalidQuality)
var ErrInvalidQuality = errors.New("spacedrep: quality must be between 0 and 5")
