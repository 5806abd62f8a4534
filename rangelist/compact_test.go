package rangelist

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

// nums converts test literals to exact decimals.
func nums(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = decimal.RequireFromString(s)
	}
	return out
}

func segString(segs []openrange.Segment) string {
	specs := make([]string, len(segs))
	for i, seg := range segs {
		specs[i] = seg.String()
	}
	return strings.Join(specs, ",")
}

func TestCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	cases := []struct {
		values []decimal.Decimal
		want   string
	}{
		{nums("1", "2", "3", "4", "5"), "1-5"},
		{nums("1", "4", "5", "6", "7", "9", "11"), "1,4-7,9,11"},
		{nums("1", "3", "5", "8"), "1-5:2,8"},
		{nums("8", "10", "12", "1", "2", "3", "4.5", "5.5", "6.5"),
			"1-3,4.5-6.5,8-12:2"},
		{nums("7"), "7"},
		{nums("1", "2"), "1,2"},
		{nums("3", "1", "2", "2", "1"), "1-3"}, // unsorted, with duplicates
		{nil, ""},
	}
	for _, c := range cases {
		got := segString(Compact(c.values))
		if got != c.want {
			t.Errorf("compact(%v): expected %q, got %q", c.values, c.want, got)
		}
	}
}

func TestCompactMixedSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	// values left over by the unit step regroup under the next one
	got := segString(Compact(nums("1", "2", "3", "4", "5", "6", "10", "12", "14")))
	if got != "1-6,10-14:2" {
		t.Errorf(`expected "1-6,10-14:2", got %q`, got)
	}
}

func TestCompactExactDecimals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	// a binary float step would drift here; exact decimals must not
	got := segString(Compact(nums("0.1", "0.2", "0.3", "0.4")))
	if got != "0.1-0.4:0.1" {
		t.Errorf(`expected "0.1-0.4:0.1", got %q`, got)
	}
}

func TestCompactIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	values := nums("1", "4", "5", "6", "7", "9", "11", "20", "22", "24")
	once := Compact(values)
	flat := make([]decimal.Decimal, 0)
	for _, seg := range once {
		flat = append(flat, seg.Values()...)
	}
	twice := Compact(flat)
	if segString(once) != segString(twice) {
		t.Errorf("compaction is not idempotent: %q vs %q",
			segString(once), segString(twice))
	}
}

func TestCompactPreservesValueSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	// flattening the segments reproduces exactly the deduplicated input
	values := nums("8", "10", "12", "1", "2", "3", "4.5", "5.5", "6.5", "3")
	want := map[string]bool{}
	for _, v := range values {
		want[openrange.NumString(v)] = true
	}
	got := map[string]bool{}
	for _, seg := range Compact(values) {
		for _, v := range seg.Values() {
			key := openrange.NumString(v)
			if got[key] {
				t.Errorf("value %s covered twice", key)
			}
			got[key] = true
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d distinct values, got %d", len(want), len(got))
	}
	for key := range want {
		if !got[key] {
			t.Errorf("value %s not covered", key)
		}
	}
}
