package openrange

import (
	"math/bits"

	"github.com/shopspring/decimal"
)

// Pow2Converter maps powers of two onto their exponents, so a range steps
// through exponents rather than values. Items are int64 powers of two;
// steps are plain integer exponent distances.
type Pow2Converter struct{}

var _ StepConverter = Pow2Converter{}

// ItemToNum returns the exponent of a power of two. Values that are not
// exact powers of two are rejected.
func (Pow2Converter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	num, err := Numeric{}.ItemToNum(item)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !num.IsInteger() || num.Sign() <= 0 {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf(
			"not a power of 2: %s", NumString(num))
	}
	v := num.IntPart()
	if v&(v-1) != 0 {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("not a power of 2: %d", v)
	}
	return decimal.NewFromInt(int64(bits.TrailingZeros64(uint64(v)))), nil
}

// NumToItem returns 2 raised to the exponent, as int64.
func (Pow2Converter) NumToItem(num decimal.Decimal) (interface{}, error) {
	exp := num.IntPart()
	if exp < 0 || exp > 62 {
		return nil, ErrInvalidArgument.Errorf("exponent out of range: %d", exp)
	}
	return int64(1) << uint(exp), nil
}

// StepToNum converts a plain integer exponent distance.
func (Pow2Converter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return Numeric{}.ItemToNum(step)
}

// NumToStep returns the exponent distance as an integer.
func (Pow2Converter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return Numeric{}.NumToItem(num)
}

// NewPow2Range creates a range over powers of two. Start and stop must be
// exact powers of two; the step counts exponents:
//
//    rng, _ := openrange.NewPow2Range(1, 64, 2)
//    // 1 4 16 64
func NewPow2Range(start, stop interface{}, step int) (*Range, error) {
	return New(Pow2Converter{}, start, stop, step)
}
