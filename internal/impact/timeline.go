package impact

import (
	"time"

	"github.com/sinclairtarget/git-impact/internal/gitlog"
)

// One period in the contribution timeline.
type TimeBucket struct {
	Name         string
	Time         time.Time
	Events       int    // Deduplicated contribution events in this period
	Leader       string // Identity with the most events this period
	LeaderEvents int
}

// Resolution for a time series.
//
// apply - Truncate time to its time bucket
// label - Format the date to a label for the bucket
// next - Get next time in series, given a time
type resolution struct {
	apply func(time.Time) time.Time
	label func(time.Time) string
	next  func(time.Time) time.Time
}

func calcResolution(start time.Time, end time.Time) resolution {
	duration := end.Sub(start)
	day := time.Hour * 24
	year := day * 365

	if duration > year*5 {
		// Yearly buckets
		apply := func(t time.Time) time.Time {
			year, _, _ := t.Date()
			return time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		}
		return resolution{
			apply: apply,
			next: func(t time.Time) time.Time {
				t = apply(t)
				year, _, _ := t.Date()
				return time.Date(year+1, 1, 1, 0, 0, 0, 0, time.Local)
			},
			label: func(t time.Time) string {
				return apply(t).Format("2006")
			},
		}
	} else if duration > day*60 {
		// Monthly buckets
		apply := func(t time.Time) time.Time {
			year, month, _ := t.Date()
			return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		}
		return resolution{
			apply: apply,
			next: func(t time.Time) time.Time {
				t = apply(t)
				year, month, _ := t.Date()
				return time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local)
			},
			label: func(t time.Time) string {
				return apply(t).Format("Jan 2006")
			},
		}
	} else {
		// Daily buckets
		apply := func(t time.Time) time.Time {
			year, month, day := t.Date()
			return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		}
		return resolution{
			apply: apply,
			next: func(t time.Time) time.Time {
				t = apply(t)
				year, month, day := t.Date()
				return time.Date(year, month, day+1, 0, 0, 0, 0, time.Local)
			},
			label: func(t time.Time) string {
				return apply(t).Format(time.DateOnly)
			},
		}
	}
}

// EventTimeline buckets every author's deduplicated contribution events by
// period, with a leading author for each period.
//
// The resolution / size of the buckets is determined by the duration between
// the first commit and now. Buckets are contiguous: a period with no events
// still appears with a zero count.
func EventTimeline(
	stats map[string]gitlog.AuthorStats,
	window time.Duration,
	now time.Time,
) []TimeBucket {
	var first, last time.Time
	for _, s := range stats {
		for _, ts := range s.Timestamps {
			t := time.Unix(ts, 0)
			if first.IsZero() || t.Before(first) {
				first = t
			}
			if t.After(last) {
				last = t
			}
		}
	}

	if first.IsZero() {
		return nil
	}

	// The timeline runs through the present, but clock skew can put a commit
	// past it.
	end := now
	if last.After(end) {
		end = last
	}

	res := calcResolution(first, end)

	buckets := []TimeBucket{}
	index := map[int64]int{}
	for t := res.apply(first); !t.After(end); t = res.next(t) {
		index[t.Unix()] = len(buckets)
		buckets = append(buckets, TimeBucket{Name: res.label(t), Time: t})
	}

	for identity, s := range stats {
		grouped := map[int64][]int64{}
		for _, ts := range s.Timestamps {
			bucketTime := res.apply(time.Unix(ts, 0))
			grouped[bucketTime.Unix()] = append(
				grouped[bucketTime.Unix()],
				ts,
			)
		}

		for bucketTs, timestamps := range grouped {
			i := index[bucketTs]
			events := Dedupe(timestamps, window)

			buckets[i].Events += events
			if events > buckets[i].LeaderEvents ||
				(events == buckets[i].LeaderEvents &&
					identity < buckets[i].Leader) {
				buckets[i].Leader = identity
				buckets[i].LeaderEvents = events
			}
		}
	}

	return buckets
}
