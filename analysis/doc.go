/*
Package analysis wires grammar compilation, parsing and reconstruction into a
pipeline, and provides batch re-analysis of a lexicon.

An Analyzer keeps the compiled grammar of an inventory in a cache. Whenever
the inventory is mutated, its version changes and the grammar is recompiled
before the next word is analysed. Analyzers are safe for concurrent use.

Batch re-analysis reads words from a WordSource, writes their syllable
structure to a PhonologySink and reports to a Listener: once per word, once
per chunk of words, and once at the end. It may be cancelled through its
context.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analysis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.analysis")
}
