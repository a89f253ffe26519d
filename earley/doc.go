/*
Package earley implements an Earley chart parser for phonological grammars.

The parser works on grammars as created by package grammar: every terminal is
a single input character, wrapped by a preterminal rule  Char<c> -> "c".
There is no lexer stage; the input word is split into characters, after
stripping configured "ignored" characters and spaces.

The parser supports ambiguous grammars. All accepting derivations are
extracted as trees, and one of them is selected by a deterministic tie-break:
fewest Coda nodes first, then most nodes created by context-gated rules, then
the first one found.

Chart items are held in an arena, one slice per input position. Backpointers
are (position, index) pairs into the arena. No two items of a position may be
equal on all of their fields, backpointers included; this guarantees
termination for any finite grammar without empty rules.

A good overview of Earley parsing may be found in
"Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs
(https://dickgrune.com/Books/PTAPG_2nd_Edition/), Section 7.2.

Usage:

    rules := grammar.Compile(inv)
    parser := earley.NewParser(rules, earley.IgnoredCharacters("-'"))
    tree := parser.Parse("word")
    if tree.IsEmpty() {
        // no analysis
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.earley'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.earley")
}
