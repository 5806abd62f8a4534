package rangelist

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

// decimalComparator orders decimal values for the gods containers.
func decimalComparator(a, b interface{}) int {
	return a.(decimal.Decimal).Cmp(b.(decimal.Decimal))
}

// Compact computes the minimal list of stepped segments whose union
// reproduces exactly the given values, duplicates collapsed. An empty
// input yields an empty result.
//
// The values are deduplicated and sorted, and the distinct differences
// between consecutive values become the candidate steps. For each
// candidate step, ascending, values are grouped by their offset from a
// stepped count; consecutive runs of three or more values sharing an
// offset become a segment and leave the pool, and grouping repeats for
// the same step until a pass finds no further run, since removing a run
// can expose new ones. Values left over at the end become singleton
// segments. The result is ordered by segment start.
//
// Runs shorter than three values stay unsegmented: a 2-element "range" is
// no more compact than the values themselves, and its step would be
// ambiguous.
func Compact(values []decimal.Decimal) []openrange.Segment {
	set := treeset.NewWith(decimalComparator)
	for _, v := range values {
		set.Add(v)
	}
	remaining := make([]decimal.Decimal, 0, set.Size())
	for _, v := range set.Values() {
		remaining = append(remaining, v.(decimal.Decimal))
	}

	steps := treeset.NewWith(decimalComparator)
	for i := 1; i < len(remaining); i++ {
		steps.Add(remaining[i].Sub(remaining[i-1]))
	}

	segments := make([]openrange.Segment, 0)
	for _, s := range steps.Values() {
		step := s.(decimal.Decimal)
		for {
			var found bool
			remaining, segments, found = collectRuns(remaining, step, segments)
			if !found {
				break
			}
		}
	}
	for _, v := range remaining {
		segments = append(segments, openrange.SingleSegment(v))
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start.Cmp(segments[j].Start) < 0
	})
	tracer().Debugf("compacted %d value(s) into %d segment(s)",
		len(values), len(segments))
	return segments
}

// collectRuns makes one grouping pass over the pool for a candidate step.
// Each value at position k is keyed by the canonical string of
// value - k*step; keying on strings makes numerically equal offsets
// identical regardless of how the subtraction shaped their
// representation. Consecutive values with equal keys form a run, and
// runs of three or more become segments and leave the pool.
func collectRuns(values []decimal.Decimal, step decimal.Decimal,
	segments []openrange.Segment) ([]decimal.Decimal, []openrange.Segment, bool) {

	keys := make([]string, len(values))
	counter := decimal.Zero
	for i, v := range values {
		keys[i] = openrange.NumString(v.Sub(counter))
		counter = counter.Add(step)
	}

	kept := make([]decimal.Decimal, 0, len(values))
	found := false
	for i := 0; i < len(values); {
		j := i + 1
		for j < len(values) && keys[j] == keys[i] {
			j++
		}
		if j-i >= 3 {
			seg, _ := openrange.NewSegment(values[i], values[j-1], step)
			segments = append(segments, seg)
			found = true
		} else {
			kept = append(kept, values[i:j]...)
		}
		i = j
	}
	return kept, segments, found
}
