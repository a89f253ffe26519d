package earley

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/syllabo/grammar"
)

// Parser is an Earley parser for a fixed set of rules. A parser may be used
// for any number of inputs, but is not safe for concurrent use.
type Parser struct {
	nonterminals map[string][]*grammar.Rule // rules by LHS, in rule order
	preterminals *hashset.Set               // LHS of literal rules
	terminals    map[string][]string        // literal -> preterminals
	ignored      string
	tokens       []string
	chart        *chart
	accepting    []*TreeNode
}

// Option configures a parser.
type Option func(p *Parser)

// IgnoredCharacters sets the characters to be stripped from input words.
// Spaces are always stripped.
func IgnoredCharacters(chars string) Option {
	return func(p *Parser) {
		p.ignored = chars
	}
}

// NewParser creates a parser for a rule set. Rules are classified once:
// rules with a single quoted literal as RHS are terminal rules, their LHS
// becomes a preterminal. Rules mixing literals with other symbols are not
// supported and are dropped.
func NewParser(rules []*grammar.Rule, opts ...Option) *Parser {
	p := &Parser{
		nonterminals: make(map[string][]*grammar.Rule),
		preterminals: hashset.New(),
		terminals:    make(map[string][]string),
	}
	for _, r := range rules {
		if r.IsTerminal() {
			lit := grammar.Unquote(r.RHS[0])
			p.terminals[lit] = append(p.terminals[lit], r.LHS)
			p.preterminals.Add(r.LHS)
			continue
		}
		hybrid := false
		for _, sym := range r.RHS {
			hybrid = hybrid || grammar.IsLiteral(sym)
		}
		if hybrid {
			tracer().Errorf("dropping rule mixing literals and symbols: %s", r)
			continue
		}
		p.nonterminals[r.LHS] = append(p.nonterminals[r.LHS], r)
	}
	for _, opt := range opts {
		opt(p)
	}
	tracer().Debugf("parser has %d preterminals", p.preterminals.Size())
	return p
}

// Parse parses a word. It returns the best-ranked parse tree, or an empty
// node (see TreeNode.IsEmpty) if the word cannot be derived from the grammar.
func (p *Parser) Parse(word string) *TreeNode {
	p.tokenize(word)
	p.chart = &chart{}
	p.accepting = nil
	n := len(p.tokens)
	p.chart.add(item{LHS: grammar.Top, RHS: []string{grammar.Start}}, 0)
	for x := 0; x <= n; x++ {
		if x >= len(p.chart.sets) {
			break // no item reached position x
		}
		for y := 0; y < p.chart.size(x); y++ {
			it := *p.chart.at(x, y) // copy, chart may grow
			if it.complete() {
				p.complete(x, y, it)
			} else if p.preterminals.Contains(it.peek()) && x < n {
				p.scan(x, it)
			} else {
				p.predict(x, it)
			}
		}
		dumpChart(p.chart, x)
	}
	if n >= len(p.chart.sets) {
		tracer().Infof("no parse for %q: input not consumed", word)
		return &TreeNode{}
	}
	for i := range p.chart.sets[n] {
		it := &p.chart.sets[n][i]
		if it.LHS == grammar.Top && it.complete() {
			if tree := p.tree(n, i); tree != nil {
				p.accepting = append(p.accepting, tree)
			}
		}
	}
	if len(p.accepting) == 0 {
		tracer().Infof("no parse for %q", word)
		return &TreeNode{}
	}
	best := rank(p.accepting)
	tracer().Debugf("selected parse #%d of %d for %q", best, len(p.accepting), word)
	return p.accepting[best]
}

// Accepting returns all accepting trees of the last parse, in chart order.
func (p *Parser) Accepting() []*TreeNode {
	return p.accepting
}

// Chart returns the number of items per position of the chart of the last
// parse.
func (p *Parser) Chart() []int {
	if p.chart == nil {
		return nil
	}
	sizes := make([]int, len(p.chart.sets))
	for i, set := range p.chart.sets {
		sizes[i] = len(set)
	}
	return sizes
}

// Tokens returns the input tokens of the last parse.
func (p *Parser) Tokens() []string {
	tokens := make([]string, len(p.tokens))
	copy(tokens, p.tokens)
	return tokens
}

func (p *Parser) tokenize(word string) {
	p.tokens = p.tokens[:0]
	for _, c := range word {
		if c == ' ' || strings.ContainsRune(p.ignored, c) {
			continue
		}
		p.tokens = append(p.tokens, string(c))
	}
}

// tokenAt returns the token at position pos, or "" if pos is out of range.
func (p *Parser) tokenAt(pos int) string {
	if pos < 0 || pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[pos]
}

// predict adds an item for every rule of the symbol after the dot.
func (p *Parser) predict(x int, it item) {
	N := it.peek()
	for _, r := range p.nonterminals[N] {
		p.chart.add(item{
			LHS:     r.LHS,
			RHS:     r.RHS,
			Start:   it.End,
			End:     it.End,
			Context: r.Context,
		}, it.End)
	}
}

// scan matches the token at position x against the preterminal after the dot.
// If the scan is the last step of the waiting item, its context has to match
// the following token.
func (p *Parser) scan(x int, it item) {
	P := it.peek()
	token := p.tokenAt(x)
	if !it.admits(p.tokenAt(x + 1)) {
		return
	}
	for _, pt := range p.terminals[token] {
		if pt == P {
			p.chart.add(item{
				LHS:   P,
				RHS:   []string{grammar.Literal(token)},
				Dot:   1,
				Start: it.End,
				End:   it.End + 1,
			}, it.End+1)
			return
		}
	}
}

// complete advances every item waiting for the LHS of a completed item at
// (x, y). A waiting item which completes by this advance has to have its
// context matched by the token following the completed span.
func (p *Parser) complete(x, y int, done item) {
	next := p.tokenAt(x)
	for i := 0; i < p.chart.size(done.Start); i++ {
		w := p.chart.at(done.Start, i)
		if w.peek() != done.LHS || !w.admits(next) {
			continue
		}
		back := make([]backpointer, len(w.Back), len(w.Back)+1)
		copy(back, w.Back)
		back = append(back, backpointer{Pos: x, Index: y})
		p.chart.add(item{
			LHS:     w.LHS,
			RHS:     w.RHS,
			Dot:     w.Dot + 1,
			Start:   w.Start,
			End:     done.End,
			Context: w.Context,
			Back:    back,
		}, done.End)
	}
}
