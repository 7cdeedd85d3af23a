package main

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sinclairtarget/git-impact/internal/git"
	"github.com/sinclairtarget/git-impact/internal/impact"
	"github.com/sinclairtarget/git-impact/internal/pretty"
)

const barWidth = 50

// The "hist" subcommand plots deduplicated commit events over time, naming
// the busiest author in each time bucket.
func hist(
	repoArg string,
	pathspecs []string,
	window time.Duration,
	filters git.LogFilters,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"hist\": %w", err)
		}
	}()

	logger().Debug(
		"called hist()",
		"repo",
		repoArg,
		"pathspecs",
		pathspecs,
		"window",
		window,
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

	buckets := impact.EventTimeline(stats, window, time.Now())
	if len(buckets) == 0 {
		fmt.Println("no contributors found")
		return nil
	}

	maxVal := barWidth
	for _, bucket := range buckets {
		if bucket.Events > maxVal {
			maxVal = bucket.Events
		}
	}

	drawPlot(buckets, maxVal)
	return nil
}

func drawPlot(buckets []impact.TimeBucket, maxVal int) {
	var lastLeader string
	for _, bucket := range buckets {
		clampedValue := int(math.Round(
			(float64(bucket.Events) / float64(maxVal)) * float64(barWidth),
		))
		bar := strings.Repeat("#", clampedValue)

		var leaderPart string
		if bucket.Events > 0 {
			leaderPart = fmtLeader(bucket, bucket.Leader == lastLeader)
		}

		fmt.Printf("%s ┤ %-*s %s\n", bucket.Name, barWidth, bar, leaderPart)

		lastLeader = bucket.Leader
	}
}

func fmtLeader(bucket impact.TimeBucket, fade bool) string {
	metric := fmt.Sprintf("(%d)", bucket.LeaderEvents)

	if fade {
		return fmt.Sprintf(
			"%s%s %s%s",
			pretty.Dim(),
			bucket.Leader,
			metric,
			pretty.Reset(),
		)
	}

	return fmt.Sprintf("%s %s", bucket.Leader, metric)
}
