package openrange

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// BinaryStrConverter maps binary-notation strings ("0101") onto their
// integer values. Produced items are zero-padded to the configured width.
// Steps are plain integers.
type BinaryStrConverter struct {
	// Padding is the minimum width of produced strings.
	Padding int
}

var _ StepConverter = BinaryStrConverter{}

// ItemToNum parses a binary-notation string.
func (c BinaryStrConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	s, ok := item.(string)
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("%T", item)
	}
	v, err := strconv.ParseInt(s, 2, 64)
	if err != nil {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("not a binary string: %q", s)
	}
	return decimal.NewFromInt(v), nil
}

// NumToItem renders the value in binary notation, zero-padded.
func (c BinaryStrConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	return fmt.Sprintf("%0*b", c.Padding, num.IntPart()), nil
}

// StepToNum converts a plain integer step.
func (c BinaryStrConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return Numeric{}.ItemToNum(step)
}

// NumToStep returns the step as an integer.
func (c BinaryStrConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return Numeric{}.NumToItem(num)
}

// NewBinaryStrRange creates a range of binary-notation strings. Produced
// items are padded to the width of the start string:
//
//    rng, _ := openrange.NewBinaryStrRange("0000", "1111", 3)
//    // "0000" "0011" "0110" "1001" "1100" "1111"
func NewBinaryStrRange(start, stop string, step int) (*Range, error) {
	return New(BinaryStrConverter{Padding: len(start)}, start, stop, step)
}
