/*
Package lexicon holds the words of a language under study.

A Store keeps words in memory, identified by UUIDs. It serves as the word
source and the phonology sink of batch analysis runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.lexicon")
}
