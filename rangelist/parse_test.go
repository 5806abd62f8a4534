package rangelist

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

func TestParseSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	segs, err := Parse("1-9:3,20-30:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	want := []openrange.Segment{
		{Start: decimal.NewFromInt(1), Stop: decimal.NewFromInt(9),
			Step: decimal.NewFromInt(3)},
		{Start: decimal.NewFromInt(20), Stop: decimal.NewFromInt(30),
			Step: decimal.NewFromInt(2)},
	}
	for i, w := range want {
		if !segs[i].Equal(w) {
			t.Errorf("segment %d: expected %s, got %s", i, w, segs[i])
		}
	}
}

func TestParseTokenShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	cases := []struct {
		spec string
		want string
	}{
		{"7", "7"},
		{"1-5", "1-5"},
		{"1-9:3", "1-9:3"},
		{"-3-3", "-3-3"},
		{"1--5", "1--5"}, // 1 down to -5, the sign belongs to the stop
		{"0.5-2.5:0.5", "0.5-2.5:0.5"},
		{" 1-3 , 5 ", "1-3,5"},
	}
	for _, c := range cases {
		segs, err := Parse(c.spec)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.spec, err)
		}
		rl, err := New()
		if err != nil {
			t.Fatal(err)
		}
		for _, seg := range segs {
			if err := rl.Append(seg); err != nil {
				t.Fatal(err)
			}
		}
		if rl.String() != c.want {
			t.Errorf("%q: expected %q, got %q", c.spec, c.want, rl.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	for _, spec := range []string{"abc", "1-5-7", "5-", "1-5:", "", "1-3,,5"} {
		_, err := Parse(spec)
		if err == nil {
			t.Errorf("%q: expected a parse error", spec)
			continue
		}
		var perr *openrange.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %T (%v)", spec, err, err)
		}
	}
}

func TestParseAllOrNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	segs, err := Parse("1-3,xyz,5-7")
	if err == nil {
		t.Fatalf("expected an error, got %d segments", len(segs))
	}
	var perr *openrange.ParseError
	if !errors.As(err, &perr) || perr.Token != "xyz" {
		t.Errorf("expected a parse error naming the offending token, got %v", err)
	}
}

func TestParseZeroStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	_, err := Parse("1-5:0")
	if !errors.Is(err, openrange.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a zero step, got %v", err)
	}
}

func TestParseCustomSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	segs, err := ParseWithSeparator("1-3; 5; 8-10:2", ";")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	// a separator with regexp metacharacters must be taken literally
	segs, err = ParseWithSeparator("1-3|5", "|")
	if err != nil || len(segs) != 2 {
		t.Errorf("expected 2 segments for the pipe separator, got %d (%v)", len(segs), err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	// every list parses its own string form back into an equal list
	for _, spec := range []string{"1-9:3,20-30:2", "5-7,1-3", "0.5-2.5:0.5", "42"} {
		rl, err := New(spec)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", spec, err)
		}
		back, err := New(rl.String())
		if err != nil {
			t.Fatalf("%q: re-parse failed: %v", rl.String(), err)
		}
		if !rl.Equal(back) {
			t.Errorf("%q: round trip changed the list to %q", spec, back)
		}
	}
}
