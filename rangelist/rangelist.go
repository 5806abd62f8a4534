package rangelist

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

// DefaultSeparator delimits tokens in spec strings and joins segment
// strings on output.
const DefaultSeparator = ","

// RangeList is an ordered list of range segments. Insertion order is
// preserved until Compact re-sorts and merges; the textual form joins
// each segment's spec with the separator, so a RangeList always parses
// its own output.
//
// A RangeList owns its segments exclusively; segments are plain values
// and never shared.
type RangeList struct {
	segs *arraylist.List
	sep  string
}

// New creates a range list from any mix of supported arguments: another
// *RangeList, an openrange.Segment or *openrange.Range, a spec string, a
// bare number, or a nested []interface{} of the above.
func New(args ...interface{}) (*RangeList, error) {
	return NewWithSeparator(DefaultSeparator, args...)
}

// NewWithSeparator creates a range list using a custom spec separator.
func NewWithSeparator(sep string, args ...interface{}) (*RangeList, error) {
	rl := &RangeList{segs: arraylist.New(), sep: sep}
	for _, arg := range args {
		if err := rl.Add(arg); err != nil {
			return nil, err
		}
	}
	return rl, nil
}

// Separator returns the spec separator of this list.
func (rl *RangeList) Separator() string {
	return rl.sep
}

// --- Resolving arguments ----------------------------------------------------

// resolve converts a supported argument into segments. Strings parse as
// spec strings with the list's separator; nested slices flatten
// recursively; everything the numeric converter accepts becomes a
// singleton segment.
func (rl *RangeList) resolve(arg interface{}) ([]openrange.Segment, error) {
	switch v := arg.(type) {
	case *RangeList:
		return v.Segments(), nil
	case openrange.Segment:
		return []openrange.Segment{v}, nil
	case []openrange.Segment:
		segs := make([]openrange.Segment, len(v))
		copy(segs, v)
		return segs, nil
	case *openrange.Range:
		return []openrange.Segment{v.Segment()}, nil
	case string:
		return ParseWithSeparator(v, rl.sep)
	case []interface{}:
		segs := make([]openrange.Segment, 0, len(v))
		for _, nested := range v {
			resolved, err := rl.resolve(nested)
			if err != nil {
				return nil, err
			}
			segs = append(segs, resolved...)
		}
		return segs, nil
	}
	num, err := (openrange.Numeric{}).ItemToNum(arg)
	if err != nil {
		return nil, openrange.ErrInvalidArgument.Errorf(
			"could not determine ranges from %v", arg)
	}
	return []openrange.Segment{openrange.SingleSegment(num)}, nil
}

// --- Mutation ---------------------------------------------------------------

// Add appends the segments the argument resolves to, preserving their
// order. The argument is resolved completely before the list mutates, so
// a failed Add leaves the list unchanged.
func (rl *RangeList) Add(arg interface{}) error {
	segs, err := rl.resolve(arg)
	if err != nil {
		return err
	}
	for _, seg := range segs {
		rl.segs.Add(seg)
	}
	return nil
}

// Append appends exactly one segment; an argument resolving to none or to
// several fails.
func (rl *RangeList) Append(arg interface{}) error {
	seg, err := rl.resolveOne(arg)
	if err != nil {
		return err
	}
	rl.segs.Add(seg)
	return nil
}

// Insert inserts exactly one segment at position i.
func (rl *RangeList) Insert(i int, arg interface{}) error {
	if i < 0 || i > rl.segs.Size() {
		return openrange.ErrIndexOutOfRange.Errorf("index %d, length %d", i, rl.segs.Size())
	}
	seg, err := rl.resolveOne(arg)
	if err != nil {
		return err
	}
	rl.segs.Insert(i, seg)
	return nil
}

// Set replaces the segment at position i.
func (rl *RangeList) Set(i int, arg interface{}) error {
	if i < 0 || i >= rl.segs.Size() {
		return openrange.ErrIndexOutOfRange.Errorf("index %d, length %d", i, rl.segs.Size())
	}
	seg, err := rl.resolveOne(arg)
	if err != nil {
		return err
	}
	rl.segs.Set(i, seg)
	return nil
}

// Pop removes and returns the segment at position i.
func (rl *RangeList) Pop(i int) (openrange.Segment, error) {
	seg, err := rl.At(i)
	if err != nil {
		return openrange.Segment{}, err
	}
	rl.segs.Remove(i)
	return seg, nil
}

// Delete removes the segment at position i.
func (rl *RangeList) Delete(i int) error {
	if _, err := rl.Pop(i); err != nil {
		return err
	}
	return nil
}

func (rl *RangeList) resolveOne(arg interface{}) (openrange.Segment, error) {
	segs, err := rl.resolve(arg)
	if err != nil {
		return openrange.Segment{}, err
	}
	if len(segs) != 1 {
		return openrange.Segment{}, openrange.ErrInvalidArgument.Errorf(
			"want exactly one range, got %d from %v", len(segs), arg)
	}
	return segs[0], nil
}

// Remove excludes the numbers the argument resolves to. Each segment
// containing excluded numbers is materialized, filtered and re-compacted,
// and the replacement segments take the original segment's slot;
// untouched segments keep their boundaries, so removal never coalesces
// items across separate segments. The argument is resolved completely
// before the list mutates.
func (rl *RangeList) Remove(arg interface{}) error {
	segs, err := rl.resolve(arg)
	if err != nil {
		return err
	}
	exclude := make(map[string]bool)
	for _, seg := range segs {
		for _, v := range seg.Values() {
			exclude[openrange.NumString(v)] = true
		}
	}
	replacement := arraylist.New()
	for _, raw := range rl.segs.Values() {
		seg := raw.(openrange.Segment)
		vals := seg.Values()
		kept := make([]decimal.Decimal, 0, len(vals))
		for _, v := range vals {
			if !exclude[openrange.NumString(v)] {
				kept = append(kept, v)
			}
		}
		if len(kept) == len(vals) {
			replacement.Add(seg)
			continue
		}
		for _, ns := range Compact(kept) {
			replacement.Add(ns)
		}
	}
	rl.segs = replacement
	return nil
}

// Compact flattens the whole list to its numbers and replaces the
// segments with the compactor's minimal covering, ordered by start. This
// is the only operation that merges segments which were added separately.
func (rl *RangeList) Compact() {
	all := make([]decimal.Decimal, 0)
	for _, raw := range rl.segs.Values() {
		all = append(all, raw.(openrange.Segment).Values()...)
	}
	rl.segs.Clear()
	for _, seg := range Compact(all) {
		rl.segs.Add(seg)
	}
}

// Reverse reverses the order of the segments in place.
func (rl *RangeList) Reverse() {
	for i, j := 0, rl.segs.Size()-1; i < j; i, j = i+1, j-1 {
		rl.segs.Swap(i, j)
	}
}

// --- Inspection -------------------------------------------------------------

// Len returns the number of segments.
func (rl *RangeList) Len() int {
	return rl.segs.Size()
}

// At returns the segment at position i.
func (rl *RangeList) At(i int) (openrange.Segment, error) {
	raw, ok := rl.segs.Get(i)
	if !ok {
		return openrange.Segment{}, openrange.ErrIndexOutOfRange.Errorf(
			"index %d, length %d", i, rl.segs.Size())
	}
	return raw.(openrange.Segment), nil
}

// Segments returns a copy of the segment list.
func (rl *RangeList) Segments() []openrange.Segment {
	segs := make([]openrange.Segment, 0, rl.segs.Size())
	for _, raw := range rl.segs.Values() {
		segs = append(segs, raw.(openrange.Segment))
	}
	return segs
}

// Ranges returns an iterable range for each segment, in order.
func (rl *RangeList) Ranges() []*openrange.Range {
	ranges := make([]*openrange.Range, 0, rl.segs.Size())
	for _, seg := range rl.Segments() {
		ranges = append(ranges, openrange.FromSegment(seg))
	}
	return ranges
}

// Continuous reports whether the list is a single unbroken run: exactly
// one segment with step 1.
func (rl *RangeList) Continuous() bool {
	if rl.segs.Size() != 1 {
		return false
	}
	seg, _ := rl.At(0)
	return seg.Step.Cmp(decimal.NewFromInt(1)) == 0
}

// Equal compares two lists segment for segment, numerically.
func (rl *RangeList) Equal(other *RangeList) bool {
	if rl.Len() != other.Len() {
		return false
	}
	a, b := rl.Segments(), other.Segments()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String joins each segment's spec form with the separator, preserving
// the current segment order.
func (rl *RangeList) String() string {
	specs := make([]string, 0, rl.segs.Size())
	for _, seg := range rl.Segments() {
		specs = append(specs, seg.String())
	}
	return strings.Join(specs, rl.sep)
}

// fingerprint is the hashed shape of a range list.
type fingerprint struct {
	Segments []string `version:"1"`
}

// Hash returns a stable fingerprint of the current segment list, usable
// as an identity for frame lists and similar sparse sets. Equal lists
// hash equal; lists differing only in separator hash equal too.
func (rl *RangeList) Hash() (string, error) {
	fp := fingerprint{Segments: make([]string, 0, rl.segs.Size())}
	for _, seg := range rl.Segments() {
		fp.Segments = append(fp.Segments, seg.String())
	}
	return structhash.Hash(fp, 1)
}

// --- Iteration --------------------------------------------------------------

// Iterator traverses the items of every segment lazily, in collection
// order. Items are not numerically sorted unless Compact was called.
type Iterator struct {
	segs []openrange.Segment
	cur  *openrange.Iterator
	idx  int
	item interface{}
}

// Iterator returns a fresh iterator over the concatenated segment items.
func (rl *RangeList) Iterator() *Iterator {
	return &Iterator{segs: rl.Segments()}
}

// Next advances to the next item, reporting false at the end.
func (it *Iterator) Next() bool {
	for {
		if it.cur == nil {
			if it.idx >= len(it.segs) {
				return false
			}
			it.cur = openrange.FromSegment(it.segs[it.idx]).Iterator()
			it.idx++
		}
		if it.cur.Next() {
			it.item = it.cur.Item()
			return true
		}
		it.cur = nil
	}
}

// Item returns the current item (int64 or float64). Only valid after
// Next returned true.
func (it *Iterator) Item() interface{} {
	return it.item
}

// Values materializes the complete item sequence.
func (rl *RangeList) Values() []interface{} {
	items := make([]interface{}, 0)
	it := rl.Iterator()
	for it.Next() {
		items = append(items, it.Item())
	}
	return items
}
