package impact

import (
	"errors"
	"time"
)

// Weights and windowing applied when scoring an author.
//
// The weights have no derivation beyond convention, so they are parameters
// of a run rather than constants.
type Policy struct {
	CommitWeight   float64
	AdditionWeight float64
	DeletionWeight float64
	MergeWindow    time.Duration
}

// The stock policy. Commit events dominate, additions count for more than
// deletions, and commits within half an hour of the last counted one merge
// into a single event.
func DefaultPolicy() Policy {
	return Policy{
		CommitWeight:   0.5,
		AdditionWeight: 0.3,
		DeletionWeight: 0.2,
		MergeWindow:    30 * time.Minute,
	}
}

func (p Policy) Validate() error {
	if p.CommitWeight < 0 || p.AdditionWeight < 0 || p.DeletionWeight < 0 {
		return errors.New("scoring weights must not be negative")
	}

	if p.CommitWeight == 0 && p.AdditionWeight == 0 && p.DeletionWeight == 0 {
		return errors.New("at least one scoring weight must be positive")
	}

	if p.MergeWindow <= 0 {
		return errors.New("merge window must be positive")
	}

	return nil
}
