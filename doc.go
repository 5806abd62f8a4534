/*
Package openrange provides inclusive, arbitrarily-typed arithmetic
progressions.

An openrange.Range is an inclusive progression defined by a start, stop and
step. Internally all arithmetic is carried out on exact decimal values, so
fractional steps do not accumulate binary floating point drift:

    rng, _ := openrange.NewNumeric(1, 10, 2)
    it := rng.Iterator()
    for it.Next() {
        fmt.Print(it.Item(), " ")   // 1 3 5 7 9
    }

Ranges over richer item types (dates, ASCII characters, binary strings, …)
are obtained by supplying a Converter, which maps items to and from the
underlying numeric scale. The base package ships converters for plain
numbers, ASCII characters, zero-padded binary strings, powers of two,
enumerated sequences (including day-of-week presets) and dates/times.
Package structure is as follows:

■ openrange: the progression engine, the Converter interface and the
bundled converters.

■ rangelist: ordered collections of range segments, the spec-string
notation ("1-10:2,15,20-30") and the compaction algorithm which turns an
arbitrary set of numbers into a minimal list of stepped segments.

■ cmd/rng: a small interactive shell for experimenting with range lists.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Josh Tomlinson

*/
package openrange

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'openrange'.
func tracer() tracing.Trace {
	return tracing.Select("openrange")
}
