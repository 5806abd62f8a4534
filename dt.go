package openrange

import (
	"time"

	"github.com/shopspring/decimal"
)

// The date/time converters place items on a scale of seconds since the
// Unix epoch, in UTC. Steps are time.Duration values.
var epoch = time.Unix(0, 0).UTC()

const secondsPerDay = 24 * 60 * 60

// durationToNum converts a time.Duration step to whole seconds.
func durationToNum(step interface{}) (decimal.Decimal, error) {
	d, ok := step.(time.Duration)
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("want time.Duration, got %T", step)
	}
	return decimal.NewFromInt(int64(d / time.Second)), nil
}

// numToDuration is the inverse of durationToNum.
func numToDuration(num decimal.Decimal) (interface{}, error) {
	return time.Duration(num.IntPart()) * time.Second, nil
}

// --- Datetime ranges --------------------------------------------------------

// DatetimeConverter maps time.Time items onto seconds since the epoch.
type DatetimeConverter struct{}

var _ StepConverter = DatetimeConverter{}

// ItemToNum returns the Unix seconds of a time.Time item.
func (DatetimeConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	t, ok := item.(time.Time)
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("want time.Time, got %T", item)
	}
	return decimal.NewFromInt(t.Unix()), nil
}

// NumToItem returns the UTC instant at the given Unix seconds.
func (DatetimeConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	return time.Unix(num.IntPart(), 0).UTC(), nil
}

// StepToNum converts a time.Duration step to seconds.
func (DatetimeConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return durationToNum(step)
}

// NumToStep converts seconds back to a time.Duration.
func (DatetimeConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return numToDuration(num)
}

// NewDatetimeRange creates a range of instants from start to stop
// inclusive, advancing by step.
func NewDatetimeRange(start, stop time.Time, step time.Duration) (*Range, error) {
	return New(DatetimeConverter{}, start, stop, step)
}

// --- Date ranges ------------------------------------------------------------

// DateConverter maps calendar dates onto seconds since the epoch. Items
// are time.Time values truncated to midnight UTC.
type DateConverter struct{}

var _ StepConverter = DateConverter{}

// ItemToNum returns the Unix seconds of the item's midnight.
func (DateConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	t, ok := item.(time.Time)
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("want time.Time, got %T", item)
	}
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return decimal.NewFromInt(midnight.Unix()), nil
}

// NumToItem returns the UTC date at the given Unix seconds.
func (DateConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	return time.Unix(num.IntPart(), 0).UTC(), nil
}

// StepToNum converts a time.Duration step to seconds.
func (DateConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return durationToNum(step)
}

// NumToStep converts seconds back to a time.Duration.
func (DateConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return numToDuration(num)
}

// NewDateRange creates a range of calendar dates. Start and stop are
// truncated to midnight UTC; the step would typically be a whole number
// of days:
//
//    rng, _ := openrange.NewDateRange(mon, fri, 24*time.Hour)
func NewDateRange(start, stop time.Time, step time.Duration) (*Range, error) {
	return New(DateConverter{}, start, stop, step)
}

// --- Clock time ranges ------------------------------------------------------

// TimeConverter maps clock times onto seconds since midnight, ignoring the
// item's date part. Produced items sit on the epoch day; values past
// midnight wrap around.
type TimeConverter struct{}

var _ StepConverter = TimeConverter{}

// ItemToNum returns the item's seconds since midnight.
func (TimeConverter) ItemToNum(item interface{}) (decimal.Decimal, error) {
	t, ok := item.(time.Time)
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedType.Errorf("want time.Time, got %T", item)
	}
	secs := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return decimal.NewFromInt(secs), nil
}

// NumToItem returns the clock time on the epoch day, wrapping past
// midnight.
func (TimeConverter) NumToItem(num decimal.Decimal) (interface{}, error) {
	secs := num.IntPart() % secondsPerDay
	if secs < 0 {
		secs += secondsPerDay
	}
	return epoch.Add(time.Duration(secs) * time.Second), nil
}

// StepToNum converts a time.Duration step to seconds.
func (TimeConverter) StepToNum(step interface{}) (decimal.Decimal, error) {
	return durationToNum(step)
}

// NumToStep converts seconds back to a time.Duration.
func (TimeConverter) NumToStep(num decimal.Decimal) (interface{}, error) {
	return numToDuration(num)
}

// NewTimeRange creates a range of clock times. A stop earlier than the
// start is taken to lie on the following day, so ranges may cross
// midnight in either direction.
func NewTimeRange(start, stop time.Time, step time.Duration) (*Range, error) {
	r, err := New(TimeConverter{}, start, stop, step)
	if err != nil {
		return nil, err
	}
	day := decimal.NewFromInt(secondsPerDay)
	if r.step.Sign() > 0 && r.stop.Cmp(r.start) < 0 {
		r.stop = r.stop.Add(day)
	} else if r.step.Sign() < 0 && r.start.Cmp(r.stop) < 0 {
		r.start = r.start.Add(day)
	}
	return r, nil
}
