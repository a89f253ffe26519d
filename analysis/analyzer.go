package analysis

import (
	"sync"

	"github.com/npillmayer/syllabo/earley"
	"github.com/npillmayer/syllabo/grammar"
	"github.com/npillmayer/syllabo/inventory"
	"github.com/npillmayer/syllabo/phonology"
)

// DefaultChunkSize is the number of words between progress reports.
const DefaultChunkSize = 100

// Analyzer analyses words of a language, described by an inventory.
type Analyzer struct {
	mu        sync.Mutex
	inv       *inventory.Inventory
	cache     grammar.Cache
	parser    *earley.Parser
	trans     *phonology.Transducer
	ignored   *string // overrides the inventory's setting
	chunkSize int
}

// Option configures an analyzer.
type Option func(a *Analyzer)

// IgnoredCharacters overrides the ignored characters of the inventory.
func IgnoredCharacters(chars string) Option {
	return func(a *Analyzer) {
		a.ignored = &chars
	}
}

// ChunkSize sets the number of words between progress reports of batch runs.
// Values < 1 select DefaultChunkSize.
func ChunkSize(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = DefaultChunkSize
		}
		a.chunkSize = n
	}
}

// New creates an analyzer for an inventory. The inventory may be mutated
// afterwards, but not concurrently with calls to the analyzer.
func New(inv *inventory.Inventory, opts ...Option) *Analyzer {
	a := &Analyzer{inv: inv, chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Inventory returns the inventory of the analyzer.
func (a *Analyzer) Inventory() *inventory.Inventory {
	return a.inv
}

// Analyze returns the syllables of a word. If the word cannot be parsed,
// Analyze returns false.
func (a *Analyzer) Analyze(word string) ([]phonology.Syllable, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analyze(word)
}

// Parse returns the selected parse tree for a word, or the failure sentinel.
func (a *Analyzer) Parse(word string) *earley.TreeNode {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepare()
	return a.parser.Parse(word)
}

// Alternatives returns all accepting parse trees for a word, the first
// element being the selected one. Returns nil if the word cannot be parsed.
func (a *Analyzer) Alternatives(word string) []*earley.TreeNode {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepare()
	best := a.parser.Parse(word)
	if best.IsEmpty() {
		return nil
	}
	trees := []*earley.TreeNode{best}
	for _, t := range a.parser.Accepting() {
		if t != best {
			trees = append(trees, t)
		}
	}
	return trees
}

// Spell renders syllables as surface spelling.
func (a *Analyzer) Spell(syllables []phonology.Syllable) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepare()
	return a.trans.Spell(syllables)
}

// Represent renders syllables as phonemic representation.
func (a *Analyzer) Represent(syllables []phonology.Syllable) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepare()
	return a.trans.Represent(syllables)
}

// Rules returns the compiled grammar for the current state of the inventory.
func (a *Analyzer) Rules() []*grammar.Rule {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prepare()
	rules, _ := a.cache.Rules(a.inv)
	return rules
}

// Invalidate drops the compiled grammar.
func (a *Analyzer) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache.Invalidate()
	a.parser = nil
}

func (a *Analyzer) analyze(word string) ([]phonology.Syllable, bool) {
	a.prepare()
	tree := a.parser.Parse(word)
	if tree.IsEmpty() {
		tracer().Infof("cannot parse %q", word)
		return nil, false
	}
	return a.trans.Reconstruct(tree), true
}

// prepare recompiles the grammar and re-creates parser and transducer, if the
// inventory has changed. Must be called with a.mu held.
func (a *Analyzer) prepare() {
	rules, compiled := a.cache.Rules(a.inv)
	if !compiled && a.parser != nil {
		return
	}
	ignored := a.inv.Settings().IgnoredCharacters
	if a.ignored != nil {
		ignored = *a.ignored
	}
	a.parser = earley.NewParser(rules, earley.IgnoredCharacters(ignored))
	a.trans = phonology.NewTransducer(a.inv)
	tracer().Debugf("analyzer prepared for inventory version %d", a.inv.Version())
}
