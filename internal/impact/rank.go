// Derives impact scores from raw contribution stats and ranks authors.
package impact

import (
	"cmp"
	"slices"
	"time"

	"github.com/sinclairtarget/git-impact/internal/gitlog"
)

// An author's scored standing.
type Score struct {
	Identity      string
	Commits       int
	ScaledCommits int // Commits left after merging bursts into single events
	LinesAdded    int
	LinesDeleted  int
	Value         float64
}

// Compare orders scores by value descending, then by identity ascending, so
// equal scores always come out in the same order.
func (a Score) Compare(b Score) int {
	if c := cmp.Compare(b.Value, a.Value); c != 0 {
		return c
	}

	return cmp.Compare(a.Identity, b.Identity)
}

func scoreAuthor(identity string, stats gitlog.AuthorStats, p Policy) Score {
	scaled := Dedupe(stats.Timestamps, p.MergeWindow)

	return Score{
		Identity:      identity,
		Commits:       stats.Commits,
		ScaledCommits: scaled,
		LinesAdded:    stats.LinesAdded,
		LinesDeleted:  stats.LinesDeleted,
		Value: p.CommitWeight*float64(scaled) +
			p.AdditionWeight*float64(stats.LinesAdded) +
			p.DeletionWeight*float64(stats.LinesDeleted),
	}
}

// Rank scores every author and orders them best first.
func Rank(stats map[string]gitlog.AuthorStats, p Policy) []Score {
	start := time.Now()

	scores := make([]Score, 0, len(stats))
	for identity, s := range stats {
		scores = append(scores, scoreAuthor(identity, s, p))
	}

	slices.SortFunc(scores, func(a, b Score) int {
		return a.Compare(b)
	})

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"ranked authors",
		"count",
		len(scores),
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return scores
}

// Top truncates a ranking to its first n scores. A ranking shorter than n is
// returned whole.
func Top(scores []Score, n int) []Score {
	if n < 0 {
		n = 0
	}
	if n > len(scores) {
		n = len(scores)
	}

	return scores[:n]
}
