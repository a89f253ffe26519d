package inventory

import "strings"

// RuleType is the kind of a suprasegmental spelling or representation rule.
// The first five values are diacritics; their order matches the rows of the
// diacritic table.
type RuleType int

// Rule types for suprasegmentals.
const (
	Acute RuleType = iota
	Grave
	Circumflex
	Diaeresis
	Macron
	Before  // literal text preceding
	After   // literal text following
	Doubled // spelling written twice
)

var ruleTypeNames = []string{
	"acute", "grave", "circumflex", "diaeresis", "macron", "before", "after", "doubled",
}

func (t RuleType) String() string {
	if t < 0 || int(t) >= len(ruleTypeNames) {
		return "unknown"
	}
	return ruleTypeNames[t]
}

// IsDiacritic is true for the five diacritic rule types.
func (t RuleType) IsDiacritic() bool {
	return t >= Acute && t < Before
}

// RuleTypeFromString returns the rule type for a name, as produced by String().
// "umlaut" is accepted as an alias for diaeresis.
func RuleTypeFromString(s string) (RuleType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "umlaut" {
		return Diaeresis, true
	}
	for i, n := range ruleTypeNames {
		if n == s {
			return RuleType(i), true
		}
	}
	return Before, false
}

// PlainVowels are the characters a diacritic may be placed on.
const PlainVowels = "AEIOUYaeiouy"

// diacriticChars has one row of 12 characters per diacritic rule type,
// column-aligned with PlainVowels.
var diacriticChars = [5][]rune{
	[]rune("ÁÉÍÓÚÝáéíóúý"),
	[]rune("ÀÈÌÒÙỲàèìòùỳ"),
	[]rune("ÂÊÎÔÛŶâêîôûŷ"),
	[]rune("ÄËÏÖÜŸäëïöüÿ"),
	[]rune("ĀĒĪŌŪȲāēīōūȳ"),
}

// IsPlainVowel is true if s is exactly one of the characters in PlainVowels.
func IsPlainVowel(s string) bool {
	r := []rune(s)
	return len(r) == 1 && strings.ContainsRune(PlainVowels, r[0])
}

// ApplyDiacritic places diacritic t on every plain vowel of s. Other characters
// are copied unchanged. For non-diacritic rule types s is returned as is.
func ApplyDiacritic(t RuleType, s string) string {
	if !t.IsDiacritic() {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if i := strings.IndexRune(PlainVowels, r); i >= 0 { // PlainVowels is ASCII
			b.WriteRune(diacriticChars[t][i])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
