/*
Package syllabo is a toolbox for grammar-driven phonological analysis of words
of constructed languages.

Syllabo turns a written word into syllables, their onset, peak and coda phoneme
slots, and the suprasegmental marks applied to them. All of this is driven by
user-editable linguistic data: a phoneme inventory with spellings, natural classes,
legal syllable-margin sequences and suprasegmental spelling rules. Package structure
is as follows:

■ inventory: Package inventory holds the linguistic data model and the diacritic table.

■ grammar: Package grammar compiles an inventory into a context-free grammar with
single-character terminals.

■ earley: Package earley implements a chart parser for these grammars, supporting
ambiguity and context-gated rules.

■ phonology: Package phonology reconstructs syllable structures from parse trees and
renders them back to text.

■ analysis: Package analysis wires the above into a pipeline and provides batch
re-analysis of a lexicon.

■ lexicon: Package lexicon holds the words under study, identified by UUIDs.

■ config: Package config reads the application configuration from file and environment.

Command syllrepl is an interactive tool to try out an inventory on words.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syllabo
