package openrange

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// --- Range ------------------------------------------------------------------

// Range is an inclusive arithmetic progression over a numeric scale, mapped
// to and from a richer item domain by a Converter. Start, stop and step are
// held as exact decimals; items exist only at the boundary.
//
// A Range is immutable by convention; the one exception is Reverse, which
// flips the progression in place.
type Range struct {
	conv   Converter
	start  decimal.Decimal
	stop   decimal.Decimal
	step   decimal.Decimal
	repeat int
}

// New creates a range from start to stop inclusive, using conv to map
// between items and numbers. A nil step defaults to 1; a step converting
// to 0 is rejected, as is a nil stop (there are no unbounded ranges).
func New(conv Converter, start, stop, step interface{}) (*Range, error) {
	if conv == nil {
		return nil, ErrInvalidArgument.Errorf("converter cannot be nil")
	}
	if stop == nil {
		return nil, ErrInvalidArgument.Errorf("stop value cannot be nil")
	}
	startNum, err := conv.ItemToNum(start)
	if err != nil {
		return nil, err
	}
	stopNum, err := conv.ItemToNum(stop)
	if err != nil {
		return nil, err
	}
	stepNum := one
	if step != nil {
		if stepNum, err = stepToNum(conv, step); err != nil {
			return nil, err
		}
	}
	if stepNum.IsZero() {
		return nil, ErrInvalidArgument.Errorf("step cannot be 0")
	}
	tracer().Debugf("new range %s-%s:%s", NumString(startNum),
		NumString(stopNum), NumString(stepNum))
	return &Range{
		conv:   conv,
		start:  startNum,
		stop:   stopNum,
		step:   stepNum,
		repeat: 1,
	}, nil
}

// NewSingle creates the degenerate one-item range for value.
func NewSingle(conv Converter, value interface{}) (*Range, error) {
	return New(conv, value, value, nil)
}

// NewNumeric creates a range over plain numbers (int and float items).
func NewNumeric(start, stop, step interface{}) (*Range, error) {
	return New(Numeric{}, start, stop, step)
}

// FromSegment creates a numeric range from a segment descriptor.
func FromSegment(seg Segment) *Range {
	return &Range{
		conv:   Numeric{},
		start:  seg.Start,
		stop:   seg.Stop,
		step:   seg.Step,
		repeat: 1,
	}
}

// --- Accessors --------------------------------------------------------------

// Start returns the start item.
func (r *Range) Start() (interface{}, error) {
	return r.conv.NumToItem(r.start)
}

// Stop returns the stop item.
func (r *Range) Stop() (interface{}, error) {
	return r.conv.NumToItem(r.stop)
}

// Step returns the step in its own domain (which may differ from the item
// domain, e.g. a duration).
func (r *Range) Step() (interface{}, error) {
	return numToStep(r.conv, r.step)
}

// StartNum returns the start on the numeric scale.
func (r *Range) StartNum() decimal.Decimal { return r.start }

// StopNum returns the stop on the numeric scale.
func (r *Range) StopNum() decimal.Decimal { return r.stop }

// StepNum returns the step on the numeric scale.
func (r *Range) StepNum() decimal.Decimal { return r.step }

// Segment returns the numeric (start, stop, step) descriptor of the range.
func (r *Range) Segment() Segment {
	return Segment{Start: r.start, Stop: r.stop, Step: r.step}
}

// Repeat returns the iteration repeat count (1 by default).
func (r *Range) Repeat() int { return r.repeat }

// SetRepeat sets how many times iteration traverses the progression.
// Counts below 1 are rejected.
func (r *Range) SetRepeat(times int) error {
	if times < 1 {
		return ErrInvalidArgument.Errorf("repeat count must be >= 1, got %d", times)
	}
	r.repeat = times
	return nil
}

// inRange reports whether v lies between start and stop inclusive, with
// the direction given by the sign of the step.
func (r *Range) inRange(v decimal.Decimal) bool {
	if r.step.Sign() > 0 {
		return v.Cmp(r.start) >= 0 && v.Cmp(r.stop) <= 0
	}
	return v.Cmp(r.start) <= 0 && v.Cmp(r.stop) >= 0
}

// --- Size and positional access ---------------------------------------------

// latticeLen is the number of lattice points of one traversal:
// floor((stop-start)/step) + 1. The quotient is computed exactly with a
// truncating integer division, so the count never drifts for quotients
// just below an integer.
func (r *Range) latticeLen() int {
	diff := r.stop.Sub(r.start)
	if diff.IsZero() {
		return 1
	}
	if diff.Sign() != r.step.Sign() {
		// step points away from stop
		return 0
	}
	q, _ := diff.QuoRem(r.step, 0)
	return int(q.IntPart()) + 1
}

// Len returns the number of items iteration produces, including repeats.
// It always equals the count of items the iterator yields.
func (r *Range) Len() int {
	return r.latticeLen() * r.repeat
}

// At returns the item at position i. Negative positions count from the
// end. Positions outside the normalized window [0, Len()) fail with
// ErrIndexOutOfRange.
func (r *Range) At(i int) (interface{}, error) {
	n := r.Len()
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return nil, ErrIndexOutOfRange.Errorf("index %d, length %d", i, n)
	}
	// positions beyond one traversal wrap back onto the lattice
	pos %= r.latticeLen()
	num := r.start.Add(r.step.Mul(decimal.NewFromInt(int64(pos))))
	return r.conv.NumToItem(num)
}

// Slice materializes the items between positions from and to (exclusive),
// normalizing negative bounds and clamping both, as a slice expression
// would. It returns items, not a sub-range.
func (r *Range) Slice(from, to int) ([]interface{}, error) {
	n := r.Len()
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	items := make([]interface{}, 0)
	for i := from; i < to; i++ {
		item, err := r.At(i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Index returns the 0-based position of item, the inverse of At. An item
// off the step lattice or outside the bounds fails with ErrNotFound.
func (r *Range) Index(item interface{}) (int, error) {
	num, err := r.conv.ItemToNum(item)
	if err != nil {
		return 0, err
	}
	if !r.inRange(num) {
		return 0, ErrNotFound.Errorf("%v", item)
	}
	diff := num.Sub(r.start)
	if !diff.Mod(r.step).IsZero() {
		return 0, ErrNotFound.Errorf("%v", item)
	}
	return int(diff.Div(r.step).IntPart()), nil
}

// Contains reports whether item is one of the range's items. Items the
// converter cannot map are simply not contained.
func (r *Range) Contains(item interface{}) bool {
	num, err := r.conv.ItemToNum(item)
	if err != nil {
		return false
	}
	if !r.inRange(num) {
		return false
	}
	return num.Sub(r.start).Mod(r.step).IsZero()
}

// Count returns how many times iteration produces value.
func (r *Range) Count(value interface{}) int {
	if r.Contains(value) {
		return r.repeat
	}
	return 0
}

// FirstMiddleLast returns the first, middle and last items of the range.
func (r *Range) FirstMiddleLast() (first, middle, last interface{}, err error) {
	if first, err = r.At(0); err != nil {
		return nil, nil, nil, err
	}
	if middle, err = r.At(r.Len() / 2); err != nil {
		return nil, nil, nil, err
	}
	if last, err = r.At(-1); err != nil {
		return nil, nil, nil, err
	}
	return first, middle, last, nil
}

// --- Iteration --------------------------------------------------------------

// Iterator is a lazy, pull-based traversal of a range. Each call to
// Range.Iterator starts a fresh traversal; advancing computes the next
// value arithmetically, so traversal is O(1) in memory.
//
//    it := rng.Iterator()
//    for it.Next() {
//        use(it.Item())
//    }
//    if it.Err() != nil { … }
type Iterator struct {
	rng     *Range
	cur     decimal.Decimal
	item    interface{}
	count   int
	pass    int
	exclude map[string]bool
	started bool
	done    bool
	err     error
}

// Iterator returns a fresh iterator positioned before the first item.
func (r *Range) Iterator() *Iterator {
	return &Iterator{rng: r}
}

// Enumerate returns an iterator whose Index counts from start instead of
// 0, for pairing items with an externally offset position:
//
//    it := rng.Enumerate(1)
//    for it.Next() {
//        use(it.Index(), it.Item())
//    }
func (r *Range) Enumerate(start int) *Iterator {
	return &Iterator{rng: r, count: start}
}

// Excluding returns an iterator that skips the given items. Items the
// converter cannot map fail immediately.
func (r *Range) Excluding(items ...interface{}) (*Iterator, error) {
	exclude := make(map[string]bool, len(items))
	for _, item := range items {
		num, err := r.conv.ItemToNum(item)
		if err != nil {
			return nil, err
		}
		exclude[NumString(num)] = true
	}
	return &Iterator{rng: r, exclude: exclude}, nil
}

// Next advances to the next item, reporting false when the traversal is
// exhausted or a conversion failed (check Err).
func (it *Iterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	for {
		var next decimal.Decimal
		if !it.started {
			it.started = true
			next = it.rng.start
		} else {
			next = it.cur.Add(it.rng.step)
		}
		if !it.rng.inRange(next) {
			it.pass++
			if it.pass >= it.rng.repeat {
				it.done = true
				return false
			}
			it.started = false
			continue
		}
		it.cur = next
		if it.exclude != nil && it.exclude[NumString(next)] {
			continue
		}
		item, err := it.rng.conv.NumToItem(next)
		if err != nil {
			it.err = err
			return false
		}
		it.item = item
		it.count++
		return true
	}
}

// Item returns the current item. Only valid after Next returned true.
func (it *Iterator) Item() interface{} {
	return it.item
}

// Index returns the running position of the current item, counting from
// 0 unless the iterator was created with Enumerate.
func (it *Iterator) Index() int {
	return it.count - 1
}

// Err returns the first conversion error hit during traversal, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Items materializes the complete item sequence.
func (r *Range) Items() ([]interface{}, error) {
	items := make([]interface{}, 0, r.Len())
	it := r.Iterator()
	for it.Next() {
		items = append(items, it.Item())
	}
	return items, it.Err()
}

// --- Random traversal -------------------------------------------------------

// RandomIterator traverses a range in permuted index order. Every valid
// index is visited exactly once.
type RandomIterator struct {
	rng  *Range
	perm []int
	pos  int
	item interface{}
	err  error
}

// Random returns an iterator over a random permutation of the range's
// items. A nil source uses the shared global one.
func (r *Range) Random(src *rand.Rand) *RandomIterator {
	var perm []int
	if src == nil {
		perm = rand.Perm(r.Len())
	} else {
		perm = src.Perm(r.Len())
	}
	return &RandomIterator{rng: r, perm: perm, pos: -1}
}

// Next advances to the next item of the permutation.
func (it *RandomIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for it.pos+1 < len(it.perm) {
		it.pos++
		item, err := it.rng.At(it.perm[it.pos])
		if err != nil {
			it.err = err
			return false
		}
		it.item = item
		return true
	}
	return false
}

// Item returns the current item. Only valid after Next returned true.
func (it *RandomIterator) Item() interface{} {
	return it.item
}

// Err returns the first error hit during traversal, if any.
func (it *RandomIterator) Err() error {
	return it.err
}

// --- Reversal, equality, string form ----------------------------------------

// Reverse flips the range in place: start and stop swap and the step is
// negated. Applying it twice restores the original.
func (r *Range) Reverse() {
	r.start, r.stop = r.stop, r.start
	r.step = r.step.Neg()
}

// Reversed returns a reversed copy, leaving the receiver untouched.
func (r *Range) Reversed() *Range {
	rev := *r
	rev.Reverse()
	return &rev
}

// Equal compares the numeric start, stop and step of two ranges. This is
// deliberately a numeric comparison, not an item-by-item one, so equality
// never materializes a range.
func (r *Range) Equal(other *Range) bool {
	return r.start.Cmp(other.start) == 0 &&
		r.stop.Cmp(other.stop) == 0 &&
		r.step.Cmp(other.step) == 0
}

// String returns the spec notation of the range with start, stop and step
// rendered as items: "start" for a single value, otherwise "start-stop"
// with ":step" appended when the step is not 1.
func (r *Range) String() string {
	start, err := r.Start()
	if err != nil {
		return r.Segment().String()
	}
	if r.start.Cmp(r.stop) == 0 {
		return fmt.Sprintf("%v", start)
	}
	stop, err := r.Stop()
	if err != nil {
		return r.Segment().String()
	}
	spec := fmt.Sprintf("%v-%v", start, stop)
	if r.step.Cmp(one) != 0 {
		step, err := r.Step()
		if err != nil {
			return r.Segment().String()
		}
		spec += fmt.Sprintf(":%v", step)
	}
	return spec
}
