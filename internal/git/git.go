/*
* Wraps access to data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than using
* git2go/libgit2.
 */
package git

import (
	"context"
	"fmt"
	"slices"
)

// The log export is one header line per commit ("<author-email> <unix-secs>")
// followed by that commit's numstat lines.
const logFormat = "--pretty=format:%ae %at"

func logArgs(pathspecs []string, filters LogFilters) []string {
	baseArgs := []string{
		"log",
		logFormat,
		"--numstat",
		"--no-merges",
		"--no-show-signature",
	}

	filterArgs := filters.ToArgs()

	if len(pathspecs) > 0 {
		return slices.Concat(
			baseArgs,
			filterArgs,
			[]string{"--"},
			pathspecs,
		)
	}

	return slices.Concat(baseArgs, filterArgs)
}

// Runs git log in the repository at dir, restricted to the given pathspecs.
//
// The returned subprocess streams the raw log export; the caller must consume
// StdoutLines() and then Wait() so that a non-zero exit is never mistaken for
// a complete log.
func RunLog(
	ctx context.Context,
	dir string,
	pathspecs []string,
	filters LogFilters,
) (*Subprocess, error) {
	subprocess, err := run(ctx, dir, logArgs(pathspecs, filters))
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}

func cloneArgs(url string, dir string) []string {
	return []string{"clone", "--quiet", url, dir}
}

// Clones the repository at url into dir and waits for the clone to finish.
func Clone(ctx context.Context, url string, dir string) error {
	subprocess, err := run(ctx, "", cloneArgs(url, dir))
	if err != nil {
		return fmt.Errorf("failed to run git clone: %w", err)
	}

	err = subprocess.Wait()
	if err != nil {
		return fmt.Errorf("failed to clone \"%s\": %w", url, err)
	}

	return nil
}
