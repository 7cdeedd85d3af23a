package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/sinclairtarget/git-impact/internal/format"
	"github.com/sinclairtarget/git-impact/internal/git"
	"github.com/sinclairtarget/git-impact/internal/impact"
	"github.com/sinclairtarget/git-impact/internal/pretty"
)

const tableWidth = 80

// Author sets this large get scored on multiple goroutines.
const concurrentThreshold = 1000

// The "rank" subcommand scores the authorship history of the given repository
// and paths and prints the top authors to stdout.
func rank(
	repoArg string,
	pathspecs []string,
	policy impact.Policy,
	limit int,
	useCsv bool,
	useJson bool,
	filters git.LogFilters,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"rank\": %w", err)
		}
	}()

	logger().Debug(
		"called rank()",
		"repo",
		repoArg,
		"pathspecs",
		pathspecs,
		"policy",
		policy,
		"limit",
		limit,
		"useCsv",
		useCsv,
		"useJson",
		useJson,
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

	var scores []impact.Score
	if len(stats) > concurrentThreshold && runtime.GOMAXPROCS(0) > 1 {
		scores, err = impact.RankConcurrent(ctx, stats, policy)
		if err != nil {
			return err
		}
	} else {
		// Fast enough serially for any normal repository
		scores = impact.Rank(stats, policy)
	}

	numFilteredOut := 0
	if limit < len(scores) {
		numFilteredOut = len(scores) - limit
	}
	scores = impact.Top(scores, limit)

	switch {
	case useCsv:
		return writeCsv(scores)
	case useJson:
		return writeJSON(scores)
	default:
		writeTable(scores, numFilteredOut)
	}

	return nil
}

// How a ranked author goes out to csv and json.
type row struct {
	Rank          int    `json:"rank"`
	Identity      string `json:"identity"`
	Commits       int    `json:"commits"`
	ScaledCommits int    `json:"scaled_commits"`
	LinesAdded    int    `json:"lines_added"`
	LinesDeleted  int    `json:"lines_deleted"`
	Score         string `json:"score"`
}

func toRow(i int, s impact.Score) row {
	return row{
		Rank:          i + 1,
		Identity:      s.Identity,
		Commits:       s.Commits,
		ScaledCommits: s.ScaledCommits,
		LinesAdded:    s.LinesAdded,
		LinesDeleted:  s.LinesDeleted,
		Score:         format.Score(s.Value),
	}
}

func writeCsv(scores []impact.Score) error {
	w := csv.NewWriter(os.Stdout)

	w.Write([]string{
		"rank",
		"identity",
		"commits",
		"scaled commits",
		"lines added",
		"lines deleted",
		"score",
	})

	for i, score := range scores {
		r := toRow(i, score)
		record := []string{
			strconv.Itoa(r.Rank),
			r.Identity,
			strconv.Itoa(r.Commits),
			strconv.Itoa(r.ScaledCommits),
			strconv.Itoa(r.LinesAdded),
			strconv.Itoa(r.LinesDeleted),
			r.Score,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record to stdout: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return nil
}

func writeJSON(scores []impact.Score) error {
	rows := make([]row, len(scores))
	for i, score := range scores {
		rows[i] = toRow(i, score)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("error writing JSON to stdout: %w", err)
	}

	return nil
}

func writeTable(scores []impact.Score, numFilteredOut int) {
	if len(scores) == 0 {
		fmt.Println("no contributors found")
		return
	}

	var build strings.Builder
	for _ = range tableWidth - 2 {
		build.WriteRune('─')
	}
	rule := build.String()

	// -- Write header --
	fmt.Printf("┌%s┐\n", rule)
	fmt.Printf(
		"│%-4s %-30s %7s %7s  %17s %7s│\n",
		"#",
		"Author",
		"Commits",
		"Events",
		"Lines (+/-)",
		"Score",
	)
	fmt.Printf("├%s┤\n", rule)

	// -- Write table rows --
	for i, score := range scores {
		r := toRow(i, score)

		lines := fmt.Sprintf(
			"%s%7s%s / %s%7s%s",
			pretty.Green(),
			format.Number(r.LinesAdded),
			pretty.Reset(),
			pretty.Red(),
			format.Number(r.LinesDeleted),
			pretty.Reset(),
		)

		fmt.Printf(
			"│%-4d %-30s %7s %7s  %17s %7s│\n",
			r.Rank,
			format.Abbrev(r.Identity, 30),
			format.Number(r.Commits),
			format.Number(r.ScaledCommits),
			lines,
			r.Score,
		)
	}

	if numFilteredOut > 0 {
		msg := fmt.Sprintf("...%s more...", format.Number(numFilteredOut))
		fmt.Printf("│%-*s│\n", tableWidth-2, msg)
	}

	fmt.Printf("└%s┘\n", rule)
}
