package openrange

import (
	"github.com/shopspring/decimal"
)

// EnumConverter maps the members of a fixed, ordered sequence onto their
// positions. Items may be named by value or by integer position; steps are
// plain integer position distances.
type EnumConverter struct {
	values []string
	lookup map[string]int
}

var _ StepConverter = EnumConverter{}

// NewEnumConverter builds a converter over the given sequence.
func NewEnumConverter(values []string) (EnumConverter, error) {
	if len(values) == 0 {
		return EnumConverter{}, ErrInvalidArgument.Errorf("empty enum sequence")
	}
	lookup := make(map[string]int, len(values))
	for i, v := range values {
		lookup[v] = i
	}
	return EnumConverter{values: values, lookup: lookup}, nil
}

// Values returns the underlying sequence.
func (c EnumConverter) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// ItemToNum returns the position of a member, given by value or position.
func (c EnumConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	switch v := item.(type) {
	case string:
		i, ok := c.lookup[v]
		if !ok {
			return decimal.Decimal{}, ErrUnsupportedType.Errorf(
				"not a member of the sequence: %q", v)
		}
		return decimal.NewFromInt(int64(i)), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	return decimal.Decimal{}, ErrUnsupportedType.Errorf("%T", item)
}

// NumToItem returns the member at a position.
func (c EnumConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	i := num.IntPart()
	if i < 0 || i >= int64(len(c.values)) {
		return nil, ErrIndexOutOfRange.Errorf("position %d, sequence length %d",
			i, len(c.values))
	}
	return c.values[i], nil
}

// StepToNum converts a plain integer position distance.
func (c EnumConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return Numeric{}.ItemToNum(step)
}

// NumToStep returns the position distance as an integer.
func (c EnumConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return Numeric{}.NumToItem(num)
}

// NewEnumRange creates a range over members of a sequence. An empty start
// defaults to the first member, an empty stop to the last:
//
//    rng, _ := openrange.NewEnumRange([]string{"lo", "mid", "hi"}, "", "", 1)
//    // "lo" "mid" "hi"
func NewEnumRange(values []string, start, stop string, step int) (*Range, error) {
	conv, err := NewEnumConverter(values)
	if err != nil {
		return nil, err
	}
	var startItem interface{} = start
	if start == "" {
		startItem = 0
	}
	var stopItem interface{} = stop
	if stop == "" {
		stopItem = len(values) - 1
	}
	return New(conv, startItem, stopItem, step)
}

// Calendar name sequences for the day and month range presets.
var (
	Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	Days     = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday"}
	Months = []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
)

// NewDaysRange creates a range over day names, Sunday through Saturday.
func NewDaysRange(start, stop string, step int) (*Range, error) {
	return NewEnumRange(Days, start, stop, step)
}

// NewWeekdaysRange creates a range over the working days, Monday through
// Friday.
func NewWeekdaysRange(start, stop string, step int) (*Range, error) {
	return NewEnumRange(Weekdays, start, stop, step)
}

// NewMonthsRange creates a range over month names, January through
// December.
func NewMonthsRange(start, stop string, step int) (*Range, error) {
	return NewEnumRange(Months, start, stop, step)
}
