package openrange

import (
	"github.com/shopspring/decimal"
)

// Numeric converts plain number items. Integer items come back as int64,
// fractional ones as float64; conversion to the decimal scale goes through
// value semantics that avoid binary floating point artifacts (a float 0.1
// maps to the decimal 0.1, not to its binary expansion).
type Numeric struct{}

var _ Converter = Numeric{}

// ItemToNum accepts the integer and float builtin types, strings in
// number notation, decimal values and Num.
func (Numeric) ItemToNum(item interface{}) (decimal.Decimal, error) {
	switch v := item.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromUint64(uint64(v)), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromUint64(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		n, err := ParseNum(v)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return n.Decimal(), nil
	case decimal.Decimal:
		return v, nil
	case Num:
		return v.Decimal(), nil
	}
	return decimal.Decimal{}, ErrUnsupportedType.Errorf("%T", item)
}

// NumToItem converts back to int64 for integral values, float64 otherwise.
func (Numeric) NumToItem(num decimal.Decimal) (interface{}, error) {
	return NumFromDecimal(num).Value(), nil
}
