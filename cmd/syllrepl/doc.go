/*
Command syllrepl provides an interactive command line tool for syllable
analysis. Users load an inventory and enter words; syllrepl shows the parse
tree, the syllable structure and the phonemic representation of each word.
A lexicon may be re-analysed as a whole.

Usage:

    syllrepl [-config file] [-inventory file] [-lexicon file] [-trace level] [word]

Commands:

    <word>          analyse a word
    tree <word>     show the parse tree of a word
    alt <word>      list all parses of a word
    rules [file]    print the grammar, or write it to a file
    diff <file>     compare the grammar with rules read from a file
    classes [name]  list natural classes and their members
    batch           re-analyse all words of the lexicon
    words           list the lexicon
    help            list commands
    quit            leave

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'syllabo.repl'
func tracer() tracing.Trace {
	return tracing.Select("syllabo.repl")
}
