/*
* Parses the raw log export produced by `git log` into per-author
* contribution stats.
*
* The export is line-oriented: a header line names an author identity and a
* commit timestamp, and the numstat lines that follow it all belong to that
* commit.
 */
package gitlog

import "fmt"

// Raw contribution stats for a single author, accumulated while folding over
// the log export. Timestamps are Unix seconds in log encounter order.
type AuthorStats struct {
	Commits      int
	Timestamps   []int64
	LinesAdded   int
	LinesDeleted int
}

func (s AuthorStats) String() string {
	return fmt.Sprintf(
		"{ commits:%d added:%d deleted:%d }",
		s.Commits,
		s.LinesAdded,
		s.LinesDeleted,
	)
}

// A log export line that doesn't parse.
//
// The whole run fails with the offending line attached rather than skipping
// it, since skipping would silently under-count a contributor.
type FormatError struct {
	Line   string
	Reason string
}

func (err FormatError) Error() string {
	return fmt.Sprintf("malformed log line (%s): %q", err.Reason, err.Line)
}
