package grammar

import (
	"strings"
	"unicode/utf8"
)

// Fixed non-terminals of every compiled grammar.
const (
	Start    = "S"
	Syllable = "Syll"
	Top      = "TOP" // synthetic start symbol of the parser
)

// Prefixes of derived symbol names.
const (
	CharPrefix  = "Char"
	ClassPrefix = "Class"
	PhonPrefix  = "Phon"
)

// Rule is a grammar production. RHS symbols are non-terminal names or quoted
// literals. Context, if not empty, is a single character which has to follow
// the match of the rule immediately.
type Rule struct {
	LHS     string
	RHS     []string
	Context string
}

// IsTerminal is true for rules of the form  Char<c> -> "c".
func (r *Rule) IsTerminal() bool {
	return len(r.RHS) == 1 && IsLiteral(r.RHS[0])
}

// Equal compares two rules symbol by symbol.
func (r *Rule) Equal(other *Rule) bool {
	if r.LHS != other.LHS || r.Context != other.Context || len(r.RHS) != len(other.RHS) {
		return false
	}
	for i, sym := range r.RHS {
		if other.RHS[i] != sym {
			return false
		}
	}
	return true
}

// String writes a rule in textual notation, i.e.
//
//    LHS -> A B "c" | x
//
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS)
	b.WriteString(" ->")
	for _, sym := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(sym)
	}
	if r.Context != "" {
		b.WriteString(" | ")
		if strings.ContainsAny(r.Context, " \t\r\n\"|#") {
			b.WriteString(Literal(r.Context))
		} else {
			b.WriteString(r.Context)
		}
	}
	return b.String()
}

// Diff compares two rule sets. missing are the rules of a not present in b,
// extra are the rules of b not present in a. Order is not significant.
func Diff(a, b []*Rule) (missing, extra []*Rule) {
	return subtract(a, b), subtract(b, a)
}

func subtract(a, b []*Rule) []*Rule {
	var d []*Rule
	for _, r := range a {
		found := false
		for _, other := range b {
			if r.Equal(other) {
				found = true
				break
			}
		}
		if !found {
			d = append(d, r)
		}
	}
	return d
}

// --- Symbol names ----------------------------------------------------------

// Char returns the symbol name for character c.
func Char(c rune) string {
	return CharPrefix + string(c)
}

// Chars splits a text into character symbols, one per rune.
func Chars(text string) []string {
	syms := make([]string, 0, utf8.RuneCountInString(text))
	for _, c := range text {
		syms = append(syms, Char(c))
	}
	return syms
}

// Class returns the symbol name for a natural class.
func Class(name string) string {
	return ClassPrefix + name
}

// Phon returns the symbol name for a phoneme.
func Phon(name string) string {
	return PhonPrefix + name
}

// Literal quotes a terminal.
func Literal(s string) string {
	return `"` + s + `"`
}

// IsLiteral is true if a symbol is a quoted literal.
func IsLiteral(sym string) bool {
	return len(sym) >= 2 && sym[0] == '"' && sym[len(sym)-1] == '"'
}

// Unquote strips the quotes of a literal. Other symbols are returned as is.
func Unquote(sym string) string {
	if IsLiteral(sym) {
		return sym[1 : len(sym)-1]
	}
	return sym
}

// IsChar is true for character symbols, i.e. "Char" followed by exactly one
// character.
func IsChar(sym string) bool {
	return strings.HasPrefix(sym, CharPrefix) &&
		utf8.RuneCountInString(sym[len(CharPrefix):]) == 1
}

// CharOf returns the character of a character symbol.
func CharOf(sym string) string {
	return strings.TrimPrefix(sym, CharPrefix)
}

// IsPhon is true for phoneme symbols.
func IsPhon(sym string) bool {
	return strings.HasPrefix(sym, PhonPrefix)
}

// PhonemeOf returns the phoneme name of a phoneme symbol.
func PhonemeOf(sym string) string {
	return strings.TrimPrefix(sym, PhonPrefix)
}
