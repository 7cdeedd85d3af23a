package impact

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sinclairtarget/git-impact/internal/gitlog"
)

// RankConcurrent is Rank with the scoring work spread across GOMAXPROCS
// goroutines. Author scores are independent of each other, so the ranking
// comes out identical to Rank's; only the wall time changes on large author
// sets.
func RankConcurrent(
	ctx context.Context,
	stats map[string]gitlog.AuthorStats,
	p Policy,
) (_ []Score, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error ranking authors concurrently: %w", err)
		}
	}()

	start := time.Now()

	type job struct {
		index    int
		identity string
		stats    gitlog.AuthorStats
	}

	jobs := make([]job, 0, len(stats))
	for identity, s := range stats {
		jobs = append(jobs, job{len(jobs), identity, s})
	}

	if len(jobs) == 0 {
		return []Score{}, nil
	}

	// Each goroutine owns a disjoint slice of indices, so no locking is
	// needed around the shared scores slice.
	scores := make([]Score, len(jobs))

	nproc := runtime.GOMAXPROCS(0)
	chunkSize := (len(jobs) + nproc - 1) / nproc

	g, ctx := errgroup.WithContext(ctx)
	for chunk := range slices.Chunk(jobs, chunkSize) {
		g.Go(func() error {
			for _, j := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}

				scores[j.index] = scoreAuthor(j.identity, j.stats, p)
			}

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(scores, func(a, b Score) int {
		return a.Compare(b)
	})

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"ranked authors concurrently",
		"count",
		len(scores),
		"nproc",
		nproc,
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return scores, nil
}
