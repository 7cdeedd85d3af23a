package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sinclairtarget/git-impact/internal/git"
)

// Just prints out the log export as seen by git impact.
func dump(
	repoArg string,
	pathspecs []string,
	filters git.LogFilters,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"dump\": %w", err)
		}
	}()

	logger().Debug(
		"called dump()",
		"repo",
		repoArg,
		"pathspecs",
		pathspecs,
		"filters",
		filters,
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir, cleanup, err := resolveRepo(ctx, repoArg)
	if err != nil {
		return err
	}
	defer cleanup()

	subprocess, err := git.RunLog(ctx, dir, pathspecs, filters)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)

	for line, err := range subprocess.StdoutLines() {
		if err != nil {
			return err
		}

		fmt.Fprintln(w, line)
	}

	err = w.Flush()
	if err != nil {
		return err
	}

	err = subprocess.Wait()
	if err != nil {
		return err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug("finished dump", "duration_ms", elapsed.Milliseconds())

	return nil
}
