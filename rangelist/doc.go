/*
Package rangelist provides ordered lists of range segments, the compact
spec-string notation for sparse number sets, and the compaction algorithm
that produces minimal segment lists from arbitrary numbers.

A spec string is a separator-delimited list of tokens of the form
NUMBER, NUMBER-NUMBER or NUMBER-NUMBER:STEP, e.g.

    "1-10:2,15,20-30"

RangeList round-trips between this notation and segment lists: it parses
its own output, though re-parsing reconstructs identical segment
boundaries only after Compact(), since un-compacted input order is
preserved on output.

Compact turns a set of numbers back into the fewest stepped segments
describing it:

    segs := rangelist.Compact(nums)   // 1,4,5,6,7,9 → "1,4-7,9"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Josh Tomlinson

*/
package rangelist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'openrange.rangelist'.
func tracer() tracing.Trace {
	return tracing.Select("openrange.rangelist")
}
