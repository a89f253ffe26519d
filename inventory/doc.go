/*
Package inventory holds the linguistic data a phonological analysis is driven by:
phonemes and their spellings, natural classes, legal syllable-margin sequences,
suprasegmentals and two global settings.

The data is assumed to be mid-edit and user-authored, i.e. frequently incomplete
or inconsistent. Nothing in this package validates cross references; consumers
(most notably package grammar) skip dangling references and trace them.

Every mutation of an Inventory bumps its version. Clients caching derived data,
such as compiled grammars, compare versions instead of tracking dirty flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inventory

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.inventory'.
func tracer() tracing.Trace {
	return tracing.Select("syllabo.inventory")
}
