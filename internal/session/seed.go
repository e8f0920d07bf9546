package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

// SeedOutcome reports what seeding a list did.
type SeedOutcome struct {
	List     string
	Version  string
	Previous string // stored version before seeding, empty if unseeded
	Skipped  bool   // stored version is current and force was not set
	store.SeedResult
}

// Seed loads a catalog list into the store. Existing problems keep their
// review state. Unless force is set, a list already stored at the same or
// a newer version is left alone.
func (s *Service) Seed(ctx context.Context, l catalog.List, source string, force bool) (SeedOutcome, error) {
	out := SeedOutcome{List: l.Name, Version: l.Version}

	meta, err := s.repos.Lists.Get(ctx, l.Name)
	switch {
	case err == nil:
		out.Previous = meta.Version
		if !force && !catalog.NeedsUpdate(meta.Version, l.Version) {
			out.Skipped = true
			return out, nil
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		return out, fmt.Errorf("load list meta: %w", err)
	}

	out.SeedResult, err = s.repos.Problems.Seed(ctx, l.Name, l.NewProblems())
	if err != nil {
		return out, fmt.Errorf("seed %s: %w", l.Name, err)
	}
	if err := s.repos.Lists.Put(ctx, store.ListMeta{Name: l.Name, Version: l.Version, Source: source}); err != nil {
		return out, err
	}
	return out, nil
}
