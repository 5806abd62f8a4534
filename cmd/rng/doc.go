/*
Package rng/main provides a small interactive shell for range lists.
Users enter commands like

    add 1-10:2,15
    remove 5
    compact
    items

against a working range list, and the shell prints the resulting spec
string after every mutation. It is intended as a sandbox for exploring
the spec notation and the compaction behaviour.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Josh Tomlinson

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'openrange.repl'
func tracer() tracing.Trace {
	return tracing.Select("openrange.repl")
}
