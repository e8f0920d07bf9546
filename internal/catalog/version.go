package catalog

import (
	"strings"

	"golang.org/x/mod/semver"
)

// canonical prefixes a "v" when missing so "1.2.0" and "v1.2.0" compare
// equal. Invalid versions come back empty.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// NeedsUpdate reports whether a list stored at version stored should be
// re-seeded from a list at version incoming. A missing or unparsable
// stored version always needs an update; an unversioned incoming list
// never replaces a versioned one.
func NeedsUpdate(stored, incoming string) bool {
	s, in := canonical(stored), canonical(incoming)
	if s == "" {
		return true
	}
	if in == "" {
		return false
	}
	return semver.Compare(in, s) > 0
}
