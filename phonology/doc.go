/*
Package phonology reconstructs the phonological structure of a word from its
parse tree, and renders structures back to text.

The structure of a word is a list of syllables. Every syllable holds the
phonemes of its onset, peak and coda, together with the names of the
suprasegmentals applied to each phoneme, and the names of the suprasegmentals
applied to the syllable as a whole.

Reconstruction is best-effort. Literal text which cannot be attributed to a
suprasegmental is dropped silently, and a phoneme whose spelling cannot be
decoded is left undecorated. Two distinct before- or after-suprasegmentals
sharing the same text cannot be told apart.

Rendering comes in two flavours: Spell produces the surface spelling and is
the inverse of Reconstruct; Represent produces a phonemic transcription, with
syllables separated by '.'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package phonology

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.phonology'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.phonology")
}
