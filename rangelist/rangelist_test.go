package rangelist

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

func TestNewFromMixedArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rng, err := openrange.NewNumeric(20, 30, 2)
	if err != nil {
		t.Fatal(err)
	}
	seg, err := openrange.NewSegment(
		decimal.NewFromInt(40), decimal.NewFromInt(50), decimal.NewFromInt(5))
	if err != nil {
		t.Fatal(err)
	}
	rl, err := New("1-9:3", rng, seg, 99, []interface{}{100, "101-103"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rl.String() != "1-9:3,20-30:2,40-50:5,99,100,101-103" {
		t.Errorf("unexpected list: %q", rl.String())
	}
}

func TestAddIsAtomic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-3")
	if err != nil {
		t.Fatal(err)
	}
	if err := rl.Add("5-7,xyz"); err == nil {
		t.Fatal("expected an error for a bad token")
	}
	if rl.Len() != 1 || rl.String() != "1-3" {
		t.Errorf("failed Add mutated the list: %q", rl.String())
	}
	if err := rl.Add(struct{}{}); !errors.Is(err, openrange.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for an unresolvable argument, got %v", err)
	}
}

func TestPositionalMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-3", "10-12")
	if err != nil {
		t.Fatal(err)
	}
	if err := rl.Insert(1, "5-7"); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "1-3,5-7,10-12" {
		t.Fatalf("after Insert: %q", rl.String())
	}
	if err := rl.Set(0, "0-4"); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "0-4,5-7,10-12" {
		t.Fatalf("after Set: %q", rl.String())
	}
	seg, err := rl.Pop(1)
	if err != nil {
		t.Fatal(err)
	}
	if seg.String() != "5-7" {
		t.Errorf("Pop returned %q", seg.String())
	}
	if err := rl.Delete(1); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "0-4" {
		t.Fatalf("after Delete: %q", rl.String())
	}
	// one argument, one segment
	if err := rl.Append("1-3,5-7"); !errors.Is(err, openrange.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a multi-segment Append, got %v", err)
	}
	for _, bad := range []func() error{
		func() error { return rl.Insert(5, "1") },
		func() error { return rl.Set(-1, "1") },
		func() error { return rl.Delete(3) },
	} {
		if err := bad(); !errors.Is(err, openrange.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	}
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-5")
	if err != nil {
		t.Fatal(err)
	}
	if err := rl.Remove(3); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "1,2,4,5" {
		t.Errorf(`expected "1,2,4,5", got %q`, rl.String())
	}
}

func TestRemoveKeepsUntouchedSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-3", "4-6")
	if err != nil {
		t.Fatal(err)
	}
	if err := rl.Remove(5); err != nil {
		t.Fatal(err)
	}
	// removal never coalesces values across separate segments
	if rl.String() != "1-3,4,6" {
		t.Errorf(`expected "1-3,4,6", got %q`, rl.String())
	}
}

func TestRemoveSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-10")
	if err != nil {
		t.Fatal(err)
	}
	if err := rl.Remove("4-6"); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "1-3,7-10" {
		t.Errorf(`expected "1-3,7-10", got %q`, rl.String())
	}
	// removing values the list never held is a no-op
	if err := rl.Remove(42); err != nil {
		t.Fatal(err)
	}
	if rl.String() != "1-3,7-10" {
		t.Errorf("no-op removal changed the list: %q", rl.String())
	}
}

func TestCompactList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("1-2", 3, "4-5")
	if err != nil {
		t.Fatal(err)
	}
	rl.Compact()
	if rl.String() != "1-5" {
		t.Errorf(`expected "1-5", got %q`, rl.String())
	}
	if !rl.Continuous() {
		t.Errorf("a single unit-step segment is continuous")
	}

	rl, err = New(1, 3, 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	rl.Compact()
	if rl.String() != "1-5:2,8" {
		t.Errorf(`expected "1-5:2,8", got %q`, rl.String())
	}
	if rl.Continuous() {
		t.Errorf("a stepped two-segment list is not continuous")
	}
}

func TestStringPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("5-7,1-3")
	if err != nil {
		t.Fatal(err)
	}
	if rl.String() != "5-7,1-3" {
		t.Errorf("insertion order not preserved: %q", rl.String())
	}
	rl.Reverse()
	if rl.String() != "1-3,5-7" {
		t.Errorf("after Reverse: %q", rl.String())
	}
}

func TestCustomSeparatorList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := NewWithSeparator(";", "1-3;5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rl.Len() != 2 {
		t.Fatalf("expected 2 segments, got %d", rl.Len())
	}
	if rl.String() != "1-3;5" {
		t.Errorf("expected a semicolon-joined form, got %q", rl.String())
	}
}

func TestHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	a, err := New("1-9:3", "20-30:2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithSeparator(";", "1-9:3;20-30:2")
	if err != nil {
		t.Fatal(err)
	}
	ha, err := a.Hash()
	if err != nil {
		t.Fatal(err)
	}
	hb, err := b.Hash()
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Errorf("equal lists must hash equal: %s vs %s", ha, hb)
	}
	if err := a.Add(40); err != nil {
		t.Fatal(err)
	}
	hc, err := a.Hash()
	if err != nil {
		t.Fatal(err)
	}
	if hc == ha {
		t.Errorf("different lists must not hash equal")
	}
}

func TestListIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	rl, err := New("5-7", "1-3:2")
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{5, 6, 7, 1, 3}
	it := rl.Iterator()
	got := make([]int64, 0, len(want))
	for it.Next() {
		got = append(got, it.Item().(int64))
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("item %d: expected %d, got %d", i, w, got[i])
		}
	}
	if len(rl.Values()) != len(want) {
		t.Errorf("Values out of step with the iterator")
	}
	// Ranges exposes one iterable per segment
	ranges := rl.Ranges()
	if len(ranges) != 2 || ranges[0].Len() != 3 || ranges[1].Len() != 2 {
		t.Errorf("unexpected Ranges decomposition")
	}
}

func TestListEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "openrange.rangelist")
	defer teardown()
	//
	a, err := New("1-9:3,20-30:2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("1-9:3", "20-30:2")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("lists with the same segments must be equal")
	}
	c, err := New("20-30:2", "1-9:3")
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Errorf("equality is segment order sensitive")
	}
}
