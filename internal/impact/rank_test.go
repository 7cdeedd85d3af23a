package impact_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-impact/internal/gitlog"
	"github.com/sinclairtarget/git-impact/internal/impact"
)

func TestRank(t *testing.T) {
	stats := map[string]gitlog.AuthorStats{
		"a@x.com": {
			Commits:      1,
			Timestamps:   []int64{1000},
			LinesAdded:   5,
			LinesDeleted: 2,
		},
		"bob@mail.com": {
			Commits:    2,
			Timestamps: []int64{1000, 900000},
		},
	}

	ranked := impact.Rank(stats, impact.DefaultPolicy())

	expected := []impact.Score{
		{
			Identity:      "a@x.com",
			Commits:       1,
			ScaledCommits: 1,
			LinesAdded:    5,
			LinesDeleted:  2,
			Value:         2.4,
		},
		{
			Identity:      "bob@mail.com",
			Commits:       2,
			ScaledCommits: 2,
			Value:         1.0,
		},
	}
	if diff := cmp.Diff(expected, ranked); diff != "" {
		t.Errorf("ranking does not match expected:\n%s", diff)
	}
}

// Burst commits raise the raw commit count but not the score.
func TestRankScalesBursts(t *testing.T) {
	stats := map[string]gitlog.AuthorStats{
		"spammer@x.com": {
			Commits:    3,
			Timestamps: []int64{1000, 1060, 1120},
		},
	}

	ranked := impact.Rank(stats, impact.DefaultPolicy())

	expected := []impact.Score{
		{
			Identity:      "spammer@x.com",
			Commits:       3,
			ScaledCommits: 1,
			Value:         0.5,
		},
	}
	if diff := cmp.Diff(expected, ranked); diff != "" {
		t.Errorf("ranking does not match expected:\n%s", diff)
	}
}

// Equal scores order by identity so the ranking is reproducible.
func TestRankTieBreak(t *testing.T) {
	// Six spread-out commits each: both score exactly 3.0.
	timestamps := []int64{0, 10000, 20000, 30000, 40000, 50000}

	stats := map[string]gitlog.AuthorStats{
		"b@x.com": {Commits: 6, Timestamps: timestamps},
		"a@x.com": {Commits: 6, Timestamps: timestamps},
	}

	ranked := impact.Rank(stats, impact.DefaultPolicy())

	if len(ranked) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(ranked))
	}
	if ranked[0].Value != ranked[1].Value {
		t.Fatalf(
			"expected a tie, got %f and %f",
			ranked[0].Value,
			ranked[1].Value,
		)
	}
	if ranked[0].Identity != "a@x.com" || ranked[1].Identity != "b@x.com" {
		t.Errorf(
			"tie should order by identity, got %q before %q",
			ranked[0].Identity,
			ranked[1].Identity,
		)
	}
}

// Sorting an already-ranked sequence again changes nothing.
func TestRankIdempotent(t *testing.T) {
	ranked := impact.Rank(genStats(25), impact.DefaultPolicy())

	again := slices.Clone(ranked)
	slices.SortFunc(again, func(a, b impact.Score) int {
		return a.Compare(b)
	})

	if diff := cmp.Diff(ranked, again); diff != "" {
		t.Errorf("re-sorting changed the ranking:\n%s", diff)
	}
}

func TestRankScaledWithinCommits(t *testing.T) {
	ranked := impact.Rank(genStats(50), impact.DefaultPolicy())

	for _, score := range ranked {
		if score.ScaledCommits < 0 || score.ScaledCommits > score.Commits {
			t.Errorf(
				"%s: scaled commits %d out of range for %d commits",
				score.Identity,
				score.ScaledCommits,
				score.Commits,
			)
		}
	}
}

func TestTop(t *testing.T) {
	ranked := impact.Rank(genStats(2), impact.DefaultPolicy())

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"fewer than available", 1, 1},
		{"exactly available", 2, 2},
		{"more than available", 10, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			top := impact.Top(ranked, test.n)
			if len(top) != test.expected {
				t.Errorf(
					"expected %d scores, got %d",
					test.expected,
					len(top),
				)
			}
		})
	}
}

func TestRankConcurrentMatchesRank(t *testing.T) {
	stats := genStats(100)
	policy := impact.DefaultPolicy()

	serial := impact.Rank(stats, policy)

	parallel, err := impact.RankConcurrent(
		context.Background(),
		stats,
		policy,
	)
	if err != nil {
		t.Fatalf("RankConcurrent() returned error: %v", err)
	}

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("concurrent ranking diverges from serial:\n%s", diff)
	}
}

func TestRankConcurrentEmpty(t *testing.T) {
	parallel, err := impact.RankConcurrent(
		context.Background(),
		map[string]gitlog.AuthorStats{},
		impact.DefaultPolicy(),
	)
	if err != nil {
		t.Fatalf("RankConcurrent() returned error: %v", err)
	}
	if len(parallel) != 0 {
		t.Errorf("expected empty ranking, got %d scores", len(parallel))
	}
}

// Deterministic spread of authors with varied commit cadence and line counts.
func genStats(n int) map[string]gitlog.AuthorStats {
	stats := map[string]gitlog.AuthorStats{}

	for i := 0; i < n; i++ {
		identity := fmt.Sprintf("author%03d@x.com", i)

		var timestamps []int64
		for j := 0; j <= i%7; j++ {
			timestamps = append(
				timestamps,
				int64(i*100000+j*(300+i*150)),
			)
		}

		stats[identity] = gitlog.AuthorStats{
			Commits:      len(timestamps),
			Timestamps:   timestamps,
			LinesAdded:   (i * 37) % 500,
			LinesDeleted: (i * 13) % 200,
		}
	}

	return stats
}
