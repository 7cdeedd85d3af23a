// Helpers for building throwaway Git repositories in tests.
package repotest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
)

// One commit to seed into a test repository.
type Commit struct {
	AuthorName  string
	AuthorEmail string
	Timestamp   int64             // Unix seconds
	Files       map[string]string // Path -> full contents at this commit
}

// RequireGit skips the test when no git binary is on the PATH.
func RequireGit(t *testing.T) {
	t.Helper()

	_, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not found in PATH")
	}
}

// InitRepo builds a real repository in a temp directory, seeded with the
// given commits, oldest first. The directory is cleaned up with the test.
func InitRepo(t *testing.T, commits []Commit) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, nil, "init", "--quiet")
	runGit(t, dir, nil, "config", "user.name", "test")
	runGit(t, dir, nil, "config", "user.email", "test@test.invalid")

	for i, commit := range commits {
		for path, contents := range commit.Files {
			full := filepath.Join(dir, path)

			err := os.MkdirAll(filepath.Dir(full), 0o755)
			if err != nil {
				t.Fatalf("could not create parent dir of %s: %v", path, err)
			}

			err = os.WriteFile(full, []byte(contents), 0o644)
			if err != nil {
				t.Fatalf("could not write %s: %v", path, err)
			}
		}

		runGit(t, dir, nil, "add", "--all")

		date := strconv.FormatInt(commit.Timestamp, 10) + " +0000"
		runGit(
			t,
			dir,
			[]string{
				"GIT_AUTHOR_NAME=" + commit.AuthorName,
				"GIT_AUTHOR_EMAIL=" + commit.AuthorEmail,
				"GIT_AUTHOR_DATE=" + date,
				"GIT_COMMITTER_NAME=" + commit.AuthorName,
				"GIT_COMMITTER_EMAIL=" + commit.AuthorEmail,
				"GIT_COMMITTER_DATE=" + date,
			},
			"commit",
			"--quiet",
			"--allow-empty",
			"-m",
			fmt.Sprintf("commit %d", i),
		)
	}

	return dir
}

func runGit(t *testing.T, dir string, env []string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	// Keep the user's global git config (hooks, signing) out of the repo.
	cmd.Env = append(
		os.Environ(),
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_CONFIG_SYSTEM="+os.DevNull,
	)
	cmd.Env = append(cmd.Env, env...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
