package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogArgs(t *testing.T) {
	args := logArgs(nil, LogFilters{})

	expected := []string{
		"log",
		"--pretty=format:%ae %at",
		"--numstat",
		"--no-merges",
		"--no-show-signature",
	}
	assert.Equal(t, expected, args)
}

func TestLogArgsPathspecs(t *testing.T) {
	args := logArgs([]string{"src", "lib"}, LogFilters{})

	expected := []string{
		"log",
		"--pretty=format:%ae %at",
		"--numstat",
		"--no-merges",
		"--no-show-signature",
		"--",
		"src",
		"lib",
	}
	assert.Equal(t, expected, args)
}

func TestLogArgsFilters(t *testing.T) {
	filters := LogFilters{
		Since:   "1 year ago",
		Authors: []string{"bob"},
	}
	args := logArgs(nil, filters)

	expected := []string{
		"log",
		"--pretty=format:%ae %at",
		"--numstat",
		"--no-merges",
		"--no-show-signature",
		"--since",
		"1 year ago",
		"--author",
		"bob",
	}
	assert.Equal(t, expected, args)
}

func TestCloneArgs(t *testing.T) {
	args := cloneArgs("https://example.com/foo.git", "/tmp/dst")

	expected := []string{
		"clone",
		"--quiet",
		"https://example.com/foo.git",
		"/tmp/dst",
	}
	assert.Equal(t, expected, args)
}

func TestSubprocessErr(t *testing.T) {
	cause := errors.New("exit status 128")
	err := SubprocessErr{
		ExitCode: 128,
		Stderr:   "fatal: not a git repository",
		Err:      cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "128")
	assert.Contains(t, err.Error(), "fatal: not a git repository")
}
