package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sinclairtarget/git-impact/internal/git"
	"github.com/sinclairtarget/git-impact/internal/gitlog"
)

// Turns the repository argument into a directory we can run git log in.
//
// A path that exists on disk is used in place. Anything else is treated as a
// clone URL and cloned into a temporary directory. The returned cleanup
// function removes the temporary clone, if there is one, and must always be
// called.
func resolveRepo(
	ctx context.Context,
	repoArg string,
) (dir string, cleanup func(), err error) {
	cleanup = func() {}

	info, err := os.Stat(repoArg)
	if err == nil {
		if !info.IsDir() {
			return "", cleanup, fmt.Errorf(
				"repository path \"%s\" is not a directory",
				repoArg,
			)
		}

		return repoArg, cleanup, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", cleanup, fmt.Errorf(
			"could not stat repository path \"%s\": %w",
			repoArg,
			err,
		)
	}

	tmpDir, err := os.MkdirTemp("", "git-impact-*")
	if err != nil {
		return "", cleanup, fmt.Errorf(
			"failed to create directory for clone: %w",
			err,
		)
	}

	logger().Debug("cloning repository", "url", repoArg, "dir", tmpDir)

	err = git.Clone(ctx, repoArg, tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		return "", cleanup, err
	}

	cleanup = func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			logger().Warn(
				"failed to remove temporary clone",
				"dir",
				tmpDir,
				"error",
				err,
			)
		}
	}

	return tmpDir, cleanup, nil
}

// Runs git log in dir and folds the export into per-author stats.
func collectStats(
	ctx context.Context,
	dir string,
	pathspecs []string,
	filters git.LogFilters,
) (map[string]gitlog.AuthorStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	subprocess, err := git.RunLog(ctx, dir, pathspecs, filters)
	if err != nil {
		return nil, err
	}

	stats, parseErr := gitlog.Parse(subprocess.StdoutLines())
	if parseErr != nil {
		// Kill git rather than drain it, but still reap the process.
		cancel()
		subprocess.Wait()
		return nil, parseErr
	}

	err = subprocess.Wait()
	if err != nil {
		return nil, err
	}

	return stats, nil
}
