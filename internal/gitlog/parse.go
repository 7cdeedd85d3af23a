package gitlog

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// What git numstat prints for a count it cannot compute, e.g. for binary
// files. Counts as zero lines.
const placeholder = "-"

// Parser state carried across lines: the per-author aggregates plus the
// identity that owns subsequent numstat lines.
type parser struct {
	stats   map[string]AuthorStats
	current string
}

// Parse folds the log export into per-author stats.
//
// Numstat lines are attributed to the most recent header line. The fold
// aborts on the first malformed line or stream error; it never returns
// partial stats.
func Parse(lines iter.Seq2[string, error]) (map[string]AuthorStats, error) {
	p := parser{stats: map[string]AuthorStats{}}

	for line, err := range lines {
		if err != nil {
			return nil, fmt.Errorf("error reading log export: %w", err)
		}

		err = p.foldLine(line)
		if err != nil {
			return nil, err
		}
	}

	logger().Debug("parsed log export", "authors", len(p.stats))
	return p.stats, nil
}

func (p *parser) foldLine(line string) error {
	switch {
	case isHeader(line):
		identity, timestamp, err := splitHeader(line)
		if err != nil {
			return err
		}

		stats := p.stats[identity]
		stats.Commits += 1
		stats.Timestamps = append(stats.Timestamps, timestamp)
		p.stats[identity] = stats
		p.current = identity
	case strings.TrimSpace(line) == "":
		// Separator between commits.
	case p.current == "":
		// A numstat line before any header is unattributable.
		logger().Debug("skipping unattributed line", "line", line)
	default:
		added, deleted, err := splitNumstat(line)
		if err != nil {
			return err
		}

		stats := p.stats[p.current]
		stats.LinesAdded += added
		stats.LinesDeleted += deleted
		p.stats[p.current] = stats
	}

	return nil
}

// True when the line is a commit header rather than a numstat line.
//
// Headers carry an identity, which always contains "@", and never contain a
// tab. Numstat lines always contain a tab, even when the file path itself
// contains an "@".
func isHeader(line string) bool {
	return strings.ContainsRune(line, '@') && !strings.ContainsRune(line, '\t')
}

// Splits a header line into identity and timestamp.
//
// The timestamp is the last whitespace-delimited token on the line; the
// identity is everything before it. Tokenizing from the right survives
// identities that themselves contain digits or spaces.
func splitHeader(line string) (identity string, timestamp int64, err error) {
	trimmed := strings.TrimRight(line, " \t")

	i := strings.LastIndexByte(trimmed, ' ')
	if i < 0 {
		return "", 0, FormatError{
			Line:   line,
			Reason: "header line has no timestamp",
		}
	}

	timestamp, parseErr := strconv.ParseInt(trimmed[i+1:], 10, 64)
	if parseErr != nil || timestamp < 0 {
		return "", 0, FormatError{
			Line:   line,
			Reason: "header line has no parseable timestamp",
		}
	}

	identity = strings.TrimSpace(trimmed[:i])
	return identity, timestamp, nil
}

// Splits a numstat line into its added and deleted counts. The file path in
// the third field is ignored.
func splitNumstat(line string) (added int, deleted int, err error) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) < 2 {
		return 0, 0, FormatError{
			Line:   line,
			Reason: "numstat line has fewer than two fields",
		}
	}

	added, err = parseCount(fields[0], line)
	if err != nil {
		return 0, 0, err
	}

	deleted, err = parseCount(fields[1], line)
	if err != nil {
		return 0, 0, err
	}

	return added, deleted, nil
}

func parseCount(field string, line string) (int, error) {
	if field == placeholder {
		return 0, nil
	}

	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, FormatError{
			Line:   line,
			Reason: fmt.Sprintf("bad numstat count %q", field),
		}
	}

	return n, nil
}
