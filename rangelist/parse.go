package rangelist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	openrange "github.com/josh-t/OpenRange"
)

// Optionally signed int or float.
const itemPattern = `-?\d*\.?\d*`

// Process-wide compiled constants for the spec-string grammar. A token is
// a single numeric item or a range of items indicated by the '-'
// separator, with an optional ':'-prefixed step.
var (
	rangeRegex = regexp.MustCompile(
		`^(` + itemPattern + `)(-?(` + itemPattern + `)(:(` + itemPattern + `))?)?$`)
	separatorRegex = regexp.MustCompile(`\s*,\s*`)
)

// Parse converts a comma-separated spec string into segments. Whitespace
// around separators is ignored. Parsing is all-or-nothing: the first token
// that does not match the grammar fails the whole parse with a
// *openrange.ParseError naming the token, and a zero step fails with
// ErrInvalidArgument.
func Parse(spec string) ([]openrange.Segment, error) {
	return parse(spec, separatorRegex)
}

// ParseWithSeparator parses a spec string delimited by a custom separator.
func ParseWithSeparator(spec, sep string) ([]openrange.Segment, error) {
	if sep == DefaultSeparator {
		return Parse(spec)
	}
	sepRegex, err := regexp.Compile(`\s*` + regexp.QuoteMeta(sep) + `\s*`)
	if err != nil {
		return nil, openrange.ErrInvalidArgument
	}
	return parse(spec, sepRegex)
}

func parse(spec string, sepRegex *regexp.Regexp) ([]openrange.Segment, error) {
	tokens := sepRegex.Split(strings.TrimSpace(spec), -1)
	segments := make([]openrange.Segment, 0, len(tokens))
	for _, token := range tokens {
		seg, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	tracer().Debugf("parsed %q into %d segment(s)", spec, len(segments))
	return segments, nil
}

// parseToken parses one spec token: NUMBER, NUMBER-NUMBER or
// NUMBER-NUMBER:STEP. Group 1 holds the start, group 3 the stop and
// group 5 the step; negative bounds keep their sign, so "1--5" runs from
// 1 down to -5.
func parseToken(token string) (openrange.Segment, error) {
	m := rangeRegex.FindStringSubmatch(token)
	if m == nil {
		return openrange.Segment{}, &openrange.ParseError{Token: token}
	}
	start, err := openrange.ParseNum(m[1])
	if err != nil {
		return openrange.Segment{}, &openrange.ParseError{Token: token}
	}
	stop := start
	if m[2] != "" {
		if stop, err = openrange.ParseNum(m[3]); err != nil {
			return openrange.Segment{}, &openrange.ParseError{Token: token}
		}
	}
	step := openrange.NumFromDecimal(decimal.NewFromInt(1))
	if m[4] != "" {
		if step, err = openrange.ParseNum(m[5]); err != nil {
			return openrange.Segment{}, &openrange.ParseError{Token: token}
		}
	}
	seg, err := openrange.NewSegment(start.Decimal(), stop.Decimal(), step.Decimal())
	if err != nil {
		return openrange.Segment{}, fmt.Errorf("token %q: %w", token, err)
	}
	return seg, nil
}
