package impact_test

import (
	"slices"
	"testing"
	"time"

	"github.com/sinclairtarget/git-impact/internal/impact"
)

const window = 30 * time.Minute

func TestDedupe(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []int64
		expected   int
	}{
		{
			name:       "empty",
			timestamps: []int64{},
			expected:   0,
		},
		{
			name:       "single",
			timestamps: []int64{1690000000},
			expected:   1,
		},
		{
			name:       "exactly a window apart",
			timestamps: []int64{1000, 2800},
			expected:   2,
		},
		{
			name:       "one second under a window apart",
			timestamps: []int64{1000, 2799},
			expected:   1,
		},
		{
			name:       "burst then gap",
			timestamps: []int64{0, 1000, 5000},
			expected:   2,
		},
		{
			name:       "identical timestamps",
			timestamps: []int64{500, 500, 500},
			expected:   1,
		},
		{
			// The window anchors on the last counted timestamp, not the
			// last seen one, so a chain of sub-window gaps still counts a
			// new event once it drifts a full window past the anchor.
			name:       "chain of sub-window gaps",
			timestamps: []int64{0, 1700, 3400},
			expected:   2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			count := impact.Dedupe(test.timestamps, window)
			if count != test.expected {
				t.Errorf(
					"expected %d events for %v, got %d",
					test.expected,
					test.timestamps,
					count,
				)
			}
		})
	}
}

// The count depends only on the set of timestamps, not their order.
func TestDedupeOrderIndependence(t *testing.T) {
	orderings := [][]int64{
		{0, 1000, 5000, 7000, 7100},
		{7100, 7000, 5000, 1000, 0},
		{5000, 0, 7100, 1000, 7000},
		{1000, 7000, 0, 7100, 5000},
	}

	first := impact.Dedupe(orderings[0], window)
	for _, timestamps := range orderings[1:] {
		count := impact.Dedupe(timestamps, window)
		if count != first {
			t.Errorf(
				"expected %d events for %v, got %d",
				first,
				timestamps,
				count,
			)
		}
	}
}

func TestDedupeDoesNotReorderInput(t *testing.T) {
	timestamps := []int64{5000, 0, 1000}
	impact.Dedupe(timestamps, window)

	if !slices.Equal(timestamps, []int64{5000, 0, 1000}) {
		t.Errorf("input slice was reordered: %v", timestamps)
	}
}

// Deduplication can only ever merge events, never invent them.
func TestDedupeNeverExceedsCommitCount(t *testing.T) {
	cases := [][]int64{
		{},
		{42},
		{0, 0, 0, 0},
		{0, 1800, 3600, 5400},
		{100, 200, 300, 10000, 20000},
	}

	for _, timestamps := range cases {
		count := impact.Dedupe(timestamps, window)
		if count < 0 || count > len(timestamps) {
			t.Errorf(
				"count %d out of range for %d timestamps",
				count,
				len(timestamps),
			)
		}
		if len(timestamps) > 0 && count < 1 {
			t.Errorf("non-empty input should count at least one event")
		}
	}
}
