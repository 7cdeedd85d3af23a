package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/sinclairtarget/git-impact/internal/git"
)

// Just prints out a simple representation of the stats parsed from the log
// export for debugging.
func parse(
	repoArg string,
	pathspecs []string,
	filters git.LogFilters,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"parse\": %w", err)
		}
	}()

	logger().Debug(
		"called parse()",
		"repo",
		repoArg,
		"pathspecs",
		pathspecs,
		"filters",
		filters,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir, cleanup, err := resolveRepo(ctx, repoArg)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := collectStats(ctx, dir, pathspecs, filters)
	if err != nil {
		return err
	}

	for _, identity := range slices.Sorted(maps.Keys(stats)) {
		fmt.Printf("%s %s\n", identity, stats[identity])
	}

	return nil
}
