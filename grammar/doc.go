/*
Package grammar compiles a linguistic inventory into a context-free grammar.

The grammar has single-character terminals. Multi-character spellings are not
tokenized by a lexer, but produced compositionally by rules over character
symbols:

    S      -> Syll | Syll S
    Syll   -> Onset Peak | Onset Peak Coda | Peak | Peak Coda
    Onset  -> ClassC
    ClassC -> Phonp
    Phonp  -> Charp
    Charp  -> "p"

Symbol names are derived from inventory entries: "Char"+c for characters,
"Class"+name for natural classes, "Phon"+name for phonemes. Literals are
written in double quotes.

Compilation never fails. Inventories are user-authored and frequently
incomplete, so sequences or suprasegmentals referring to missing phonemes or
classes are traced and skipped. The result is always the best grammar
obtainable from the current data.

Rules may be dumped in a textual notation and read back with ParseRules:

    # comment
    Phona -> Chara | h
    Chara -> "a"

The optional part after '|' is a context character, which has to follow the
match immediately for the rule to apply.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.grammar")
}
