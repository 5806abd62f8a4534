package openrange

import (
	"github.com/shopspring/decimal"
)

// AsciiConverter maps single ASCII characters onto their code points.
// Items may be runes or one-character strings; items come back as strings.
// Steps are plain integer code point distances.
type AsciiConverter struct{}

var _ StepConverter = AsciiConverter{}

// ItemToNum returns the code point of a rune or one-character string.
func (AsciiConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	switch v := item.(type) {
	case rune:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		runes := []rune(v)
		if len(runes) != 1 {
			return decimal.Decimal{}, ErrUnsupportedType.Errorf(
				"want a single character, got %q", v)
		}
		return decimal.NewFromInt(int64(runes[0])), nil
	}
	return decimal.Decimal{}, ErrUnsupportedType.Errorf("%T", item)
}

// NumToItem returns the character for a code point, as a string.
func (AsciiConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	return string(rune(num.IntPart())), nil
}

// StepToNum converts an integer code point distance.
func (AsciiConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return Numeric{}.ItemToNum(step)
}

// NumToStep returns the code point distance as an integer.
func (AsciiConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return Numeric{}.NumToItem(num)
}

// NewAsciiRange creates a range of ASCII characters, inclusive:
//
//    rng, _ := openrange.NewAsciiRange("a", "z", 4)
//    // "a" "e" "i" "m" "q" "u" "y"
func NewAsciiRange(start, stop string, step int) (*Range, error) {
	return New(AsciiConverter{}, start, stop, step)
}
