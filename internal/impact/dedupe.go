package impact

import (
	"slices"
	"time"
)

// Dedupe counts an author's logical contribution events, merging any commit
// landing within window of the last counted one into that event.
//
// Timestamps are Unix seconds in any order; the result depends only on the
// set of them. The window anchors on each newly counted timestamp rather
// than on fixed bins, so a chain of commits each just under the window apart
// collapses to one event no matter how long the chain runs.
func Dedupe(timestamps []int64, window time.Duration) int {
	if len(timestamps) < 2 {
		return len(timestamps)
	}

	sorted := slices.Clone(timestamps)
	slices.Sort(sorted)

	gap := int64(window / time.Second)

	count := 1
	last := sorted[0]
	for _, ts := range sorted[1:] {
		if ts-last >= gap {
			count += 1
			last = ts
		}
	}

	return count
}
