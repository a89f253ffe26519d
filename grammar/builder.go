package grammar

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Builder collects rules. Rules are constructed in a fluent style:
//
//    b := grammar.NewBuilder()
//    b.LHS("S").N("Syll").N("S").End()         // S     -> Syll S
//    b.LHS("Phonp").C("ph").End()               // Phonp -> Charp Charh
//    b.LHS("Phona").C("a").Context("h").End()   // Phona -> Chara | h
//    rules := b.Terminals().Rules()             // adds Charp -> "p", …
//
// The builder remembers every character symbol it has handed out, in order of
// first appearance, to be able to create the terminal rules.
type Builder struct {
	rules   []*Rule
	chars   *linkedhashset.Set
	emitted int // number of chars with a terminal rule
}

// NewBuilder creates an empty rule builder.
func NewBuilder() *Builder {
	return &Builder{chars: linkedhashset.New()}
}

// RuleBuilder is a builder for a single rule, returned by Builder.LHS.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// LHS starts a new rule.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, rule: &Rule{LHS: name}}
}

// N appends a non-terminal symbol.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.RHS = append(rb.rule.RHS, name)
	return rb
}

// C appends one character symbol for every character of text.
func (rb *RuleBuilder) C(text string) *RuleBuilder {
	for _, c := range text {
		rb.b.chars.Add(c)
		rb.rule.RHS = append(rb.rule.RHS, Char(c))
	}
	return rb
}

// Lit appends a quoted literal.
func (rb *RuleBuilder) Lit(s string) *RuleBuilder {
	rb.rule.RHS = append(rb.rule.RHS, Literal(s))
	return rb
}

// Context sets the context character of the rule. The character will receive
// a terminal rule as well.
func (rb *RuleBuilder) Context(c string) *RuleBuilder {
	for _, r := range c {
		rb.b.chars.Add(r)
	}
	rb.rule.Context = c
	return rb
}

// End finishes a rule and adds it to the builder. Rules with an empty RHS are
// not supported and will be dropped; End returns nil in this case.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rule.RHS) == 0 {
		tracer().Errorf("dropping epsilon rule for %s", rb.rule.LHS)
		return nil
	}
	rb.b.rules = append(rb.b.rules, rb.rule)
	return rb.rule
}

// Terminals adds a rule  Char<c> -> "c"  for every character symbol which has
// been handed out by C and does not have a terminal rule yet.
func (b *Builder) Terminals() *Builder {
	for i, v := range b.chars.Values() {
		if i < b.emitted {
			continue
		}
		c := v.(rune)
		b.rules = append(b.rules, &Rule{LHS: Char(c), RHS: []string{Literal(string(c))}})
	}
	b.emitted = b.chars.Size()
	return b
}

// Rules returns the rules collected so far.
func (b *Builder) Rules() []*Rule {
	return b.rules
}
