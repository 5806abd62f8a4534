package openrange

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// --- A general purpose interface for item conversion ------------------------

// Converter maps range items to and from the underlying numeric scale.
// Every concrete range type supplies one; the progression engine never
// touches items directly, it converts at the boundary only (on construction
// and on each produced element).
//
// NumToItem must invert ItemToNum for every number the engine produces:
//
//    ItemToNum(NumToItem(n)) == n
//
// Conversion of an unsupported item type should fail with an error wrapping
// ErrUnsupportedType.
type Converter interface {
	ItemToNum(item interface{}) (decimal.Decimal, error)
	NumToItem(num decimal.Decimal) (interface{}, error)
}

// StepConverter is an optional capability for converters whose step domain
// differs from the item domain (e.g. a duration step between points in
// time). When a Converter does not implement StepConverter, steps are
// converted with the item conversions.
type StepConverter interface {
	Converter
	StepToNum(step interface{}) (decimal.Decimal, error)
	NumToStep(num decimal.Decimal) (interface{}, error)
}

// stepToNum converts a step value, falling back to the item conversion for
// converters without a distinct step domain.
func stepToNum(c Converter, step interface{}) (decimal.Decimal, error) {
	if sc, ok := c.(StepConverter); ok {
		return sc.StepToNum(step)
	}
	return c.ItemToNum(step)
}

// numToStep is the inverse of stepToNum.
func numToStep(c Converter, num decimal.Decimal) (interface{}, error) {
	if sc, ok := c.(StepConverter); ok {
		return sc.NumToStep(num)
	}
	return c.NumToItem(num)
}

// --- Segments ---------------------------------------------------------------

// Segment is a lightweight (start, stop, step) descriptor in the numeric
// domain. Segments are the unit of spec-string parsing and of compaction;
// they carry no converter and no behaviour beyond their string form.
type Segment struct {
	Start decimal.Decimal
	Stop  decimal.Decimal
	Step  decimal.Decimal
}

// NewSegment creates a segment. A zero step is rejected.
func NewSegment(start, stop, step decimal.Decimal) (Segment, error) {
	if step.IsZero() {
		return Segment{}, ErrInvalidArgument.Errorf("step cannot be 0")
	}
	return Segment{Start: start, Stop: stop, Step: step}, nil
}

// SingleSegment creates the degenerate segment covering just one value.
func SingleSegment(value decimal.Decimal) Segment {
	return Segment{Start: value, Stop: value, Step: decimal.NewFromInt(1)}
}

// Equal compares two segments numerically, i.e. 1 and 1.0 are the same.
func (s Segment) Equal(other Segment) bool {
	return s.Start.Cmp(other.Start) == 0 &&
		s.Stop.Cmp(other.Stop) == 0 &&
		s.Step.Cmp(other.Step) == 0
}

// String returns the spec notation for the segment: "start" for a single
// value, "start-stop" for a run, with ":step" appended when step ≠ 1.
func (s Segment) String() string {
	if s.Start.Cmp(s.Stop) == 0 {
		return NumString(s.Start)
	}
	spec := NumString(s.Start) + "-" + NumString(s.Stop)
	if s.Step.Cmp(decimal.NewFromInt(1)) != 0 {
		spec += ":" + NumString(s.Step)
	}
	return spec
}

// covers reports whether v lies between the segment's start and stop
// inclusive, in the direction of the step.
func (s Segment) covers(v decimal.Decimal) bool {
	if s.Step.Sign() > 0 {
		return v.Cmp(s.Start) >= 0 && v.Cmp(s.Stop) <= 0
	}
	return v.Cmp(s.Start) <= 0 && v.Cmp(s.Stop) >= 0
}

// Values materializes the segment's numeric lattice. This is intentionally
// O(n); lazy traversal of a segment goes through FromSegment and the range
// iterator instead.
func (s Segment) Values() []decimal.Decimal {
	vals := make([]decimal.Decimal, 0)
	for cur := s.Start; s.covers(cur); cur = cur.Add(s.Step) {
		vals = append(vals, cur)
	}
	return vals
}

// --- Numbers ----------------------------------------------------------------

// Num is a tagged numeric variant: either an integer or a decimal. It is
// the item type produced by the plain numeric converter and replaces
// parse-failure control flow when telling int items from float items.
type Num struct {
	dec   decimal.Decimal
	isInt bool
}

// ParseNum parses an optionally signed integer or decimal string. Integer
// parsing is attempted first; anything that is neither fails with an error
// wrapping ErrInvalidArgument.
func ParseNum(s string) (Num, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Num{dec: decimal.NewFromInt(i), isInt: true}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Num{}, ErrInvalidArgument.Errorf("not a number: %q", s)
	}
	return Num{dec: d, isInt: false}, nil
}

// NumFromDecimal tags a decimal as integer when it has no fractional part.
func NumFromDecimal(d decimal.Decimal) Num {
	return Num{dec: d, isInt: d.IsInteger()}
}

// IsInt reports whether the number carries an integer tag.
func (n Num) IsInt() bool {
	return n.isInt
}

// Decimal returns the exact decimal value.
func (n Num) Decimal() decimal.Decimal {
	return n.dec
}

// Value returns the number as int64 or float64, matching its tag.
func (n Num) Value() interface{} {
	if n.isInt {
		return n.dec.IntPart()
	}
	f, _ := n.dec.Float64()
	return f
}

func (n Num) String() string {
	return NumString(n.dec)
}

// NumString renders a decimal in canonical form, without trailing fraction
// zeros ("1.50" → "1.5", "2.0" → "2"). Exactly this form keys the grouping
// in the compactor, so numerically equal values always compare equal as
// strings regardless of how their exponents came out of the arithmetic.
func NumString(d decimal.Decimal) string {
	s := d.String()
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
