package earley

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/syllabo"
	"github.com/npillmayer/syllabo/grammar"
	"github.com/npillmayer/syllabo/inventory"
)

// We use a small inventory for testing:
//
//     p  spelled "p", class C
//     a  spelled "a", class V
//
//     Onset = C,  Peak = V,  Coda = C
//
func makeRules(t *testing.T, withCoda bool) []*grammar.Rule {
	inv := inventory.New()
	inv.AddPhoneme("p", "p")
	inv.AddPhoneme("a", "a")
	inv.AddClass("C", inventory.PhonemeClass)
	inv.AddClass("V", inventory.PhonemeClass)
	_ = inv.AssignClass("C", "p")
	_ = inv.AssignClass("V", "a")
	inv.AddSequence(syllabo.Onset, []string{"C"})
	inv.AddSequence(syllabo.Peak, []string{"V"})
	if withCoda {
		inv.AddSequence(syllabo.Coda, []string{"C"})
	}
	level := tracing.Select("syllabo.grammar").GetTraceLevel()
	tracing.Select("syllabo.grammar").SetTraceLevel(tracing.LevelError)
	defer tracing.Select("syllabo.grammar").SetTraceLevel(level)
	return grammar.Compile(inv)
}

func reversed(rules []*grammar.Rule) []*grammar.Rule {
	r := make([]*grammar.Rule, len(rules))
	for i, rule := range rules {
		r[len(rules)-1-i] = rule
	}
	return r
}

func codas(tree *TreeNode) int {
	return tree.Count(isCoda)
}

// --- the Tests -------------------------------------------------------------

func TestParseSyllables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	parser := NewParser(makeRules(t, false))
	tree := parser.Parse("pa")
	if tree.IsEmpty() {
		t.Fatalf("expected 'pa' to be accepted")
	}
	expected := "(TOP (S (Syll (Onset (ClassC (Phonp (Charp p)))) (Peak (ClassV (Phona (Chara a)))))))"
	if tree.String() != expected {
		t.Errorf("unexpected tree:\n%s\nexpected:\n%s", tree, expected)
	}
	if tree.Extent != (syllabo.Span{0, 2}) {
		t.Errorf("expected root to span (0…2), spans %s", tree.Extent)
	}
	tree = parser.Parse("papa")
	if tree.IsEmpty() || tree.Count(func(n *TreeNode) bool { return n.Label == "Syll" }) != 2 {
		t.Errorf("expected 'papa' to have 2 syllables: %s", tree)
	}
	if tree.Text() != "papa" {
		t.Errorf("expected leaves to spell 'papa', have %q", tree.Text())
	}
	S := tree.Child(grammar.Start)
	if first := S.Child(grammar.Syllable); first == nil || first.Extent != (syllabo.Span{0, 2}) {
		t.Errorf("expected first syllable to span (0…2)")
	}
	if second := S.Child(grammar.Start).Child(grammar.Syllable); second == nil || second.Extent != (syllabo.Span{2, 4}) {
		t.Errorf("expected second syllable to span (2…4)")
	}
}

func TestNoParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	parser := NewParser(makeRules(t, false))
	for _, input := range []string{"pz", "pp", "", "z"} {
		tree := parser.Parse(input)
		if !tree.IsEmpty() {
			t.Errorf("expected %q to be rejected, have %s", input, tree)
		}
		if len(parser.Accepting()) != 0 {
			t.Errorf("expected no accepting trees for %q", input)
		}
	}
}

func TestIgnoredCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	parser := NewParser(makeRules(t, false), IgnoredCharacters("-'"))
	plain := parser.Parse("papa").String()
	for _, input := range []string{"pa-pa", "pa pa", "'papa'"} {
		if tree := parser.Parse(input); tree.String() != plain {
			t.Errorf("expected %q to parse like 'papa', have %s", input, tree)
		}
	}
	if n := len(parser.Tokens()); n != 4 {
		t.Errorf("expected 4 tokens, have %d", n)
	}
}

func TestChartNoDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	parser := NewParser(makeRules(t, true))
	tree := parser.Parse("apapapa")
	if tree.IsEmpty() {
		t.Fatalf("expected 'apapapa' to be accepted")
	}
	for pos, set := range parser.chart.sets {
		seen := map[string]int{}
		for i := range set {
			k := set[i].key()
			if j, dup := seen[k]; dup {
				t.Errorf("chart[%d]: items #%d and #%d are equal: %s", pos, j, i, set[i].String())
			}
			seen[k] = i
		}
	}
	if sizes := parser.Chart(); len(sizes) != 8 {
		t.Errorf("expected chart with 8 positions, have %d", len(sizes))
	}
}

func TestBackpointersDistinguishItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	c := &chart{}
	it := item{LHS: "A", RHS: []string{"B"}, Dot: 1, Start: 0, End: 1,
		Back: []backpointer{{Pos: 1, Index: 0}}}
	if !c.add(it, 1) {
		t.Fatalf("expected first item to be added")
	}
	if c.add(it, 1) {
		t.Errorf("expected equal item to be rejected")
	}
	it.Back = []backpointer{{Pos: 1, Index: 1}}
	if !c.add(it, 1) {
		t.Errorf("expected item with other backpointer to be added")
	}
	it.Context = "x"
	if !c.add(it, 1) {
		t.Errorf("expected item with other context to be added")
	}
	if c.size(1) != 3 || c.at(1, 3) != nil {
		t.Errorf("expected 3 items at position 1, have %d", c.size(1))
	}
}

func TestDisambiguationByCodas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	rules := makeRules(t, true)
	for _, rs := range [][]*grammar.Rule{rules, reversed(rules)} {
		parser := NewParser(rs)
		// a.pap (1 coda) vs. ap.ap (2 codas)
		tree := parser.Parse("apap")
		if tree.IsEmpty() {
			t.Fatalf("expected 'apap' to be accepted")
		}
		if len(parser.Accepting()) < 2 {
			t.Errorf("expected 'apap' to be ambiguous, have %d parses", len(parser.Accepting()))
		}
		if n := codas(tree); n != 1 {
			t.Errorf("expected parse with 1 coda, have %d: %s", n, tree)
		}
		// a.pa (0 codas) vs. ap.a (1 coda)
		if n := codas(parser.Parse("apa")); n != 0 {
			t.Errorf("expected parse of 'apa' without coda, have %d", n)
		}
	}
}

func TestRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	coda := &TreeNode{Label: Coda}
	ctx := &TreeNode{Label: "X", Context: true}
	trees := []*TreeNode{
		{Label: "T0", Children: []*TreeNode{coda, coda}},
		{Label: "T1", Children: []*TreeNode{coda}},
		{Label: "T2", Children: []*TreeNode{coda, ctx}},
		{Label: "T3", Children: []*TreeNode{ctx, coda, ctx}},
		{Label: "T4", Children: []*TreeNode{ctx, ctx, coda}},
	}
	if best := rank(trees); best != 3 {
		t.Errorf("expected tree T3 to win, have T%d", best)
	}
}

func TestContextGating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	rules, err := grammar.ParseRules(`
S      -> Syll
S      -> Syll S
Syll   -> Peak
Peak   -> ClassV
ClassV -> Phona
ClassV -> Phone
ClassV -> Phonx
Phona  -> Chare | x   # 'e' before 'x' is an 'a'
Phone  -> Chare
Phonx  -> Charx
Chare  -> "e"
Charx  -> "x"
`)
	if err != nil {
		t.Fatal(err)
	}
	parser := NewParser(rules)
	tree := parser.Parse("ex")
	if tree.IsEmpty() {
		t.Fatalf("expected 'ex' to be accepted")
	}
	if tree.Count(func(n *TreeNode) bool { return n.Label == "Phona" }) != 1 {
		t.Errorf("expected context-gated reading of 'e' in 'ex': %s", tree)
	}
	if tree.Count(isContext) != 1 {
		t.Errorf("expected one context node, have %d", tree.Count(isContext))
	}
	tree = parser.Parse("e")
	if tree.IsEmpty() {
		t.Fatalf("expected 'e' to be accepted by context-free alternative")
	}
	if tree.Count(func(n *TreeNode) bool { return n.Label == "Phona" }) != 0 {
		t.Errorf("context-gated rule must not complete without following 'x': %s", tree)
	}
	tree = parser.Parse("ee")
	if tree.Count(isContext) != 0 {
		t.Errorf("context-gated rule must not complete before 'e': %s", tree)
	}
}

func TestContextGatingSpansSeveralCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	rules, err := grammar.ParseRules(`
S      -> Syll
S      -> Syll S
Syll   -> Onset Peak
Onset  -> ClassC
Peak   -> ClassV
ClassC -> Phonf
ClassC -> Phonp
ClassV -> Phona
ClassV -> Phone
Phonf  -> Charf
Phonf  -> Charp Charh | a   # 'ph' before 'a' is an 'f'
Phonp  -> Charp
Phona  -> Chara
Phone  -> Chare
Charf  -> "f"
Charp  -> "p"
Charh  -> "h"
Chara  -> "a"
Chare  -> "e"
`)
	if err != nil {
		t.Fatal(err)
	}
	parser := NewParser(rules)
	tree := parser.Parse("pha")
	if tree.IsEmpty() {
		t.Fatalf("expected 'pha' to be accepted")
	}
	phonf := tree.Count(func(n *TreeNode) bool { return n.Label == "Phonf" && n.Context })
	if phonf != 1 {
		t.Errorf("expected context-gated reading of 'ph' in 'pha': %s", tree)
	}
	if tree = parser.Parse("phe"); !tree.IsEmpty() {
		t.Errorf("context-gated rule must not complete before 'e': %s", tree)
	}
	if tree = parser.Parse("pa"); tree.Count(func(n *TreeNode) bool { return n.Label == "Phonp" }) != 1 {
		t.Errorf("expected 'p' in 'pa' to be read as Phonp: %s", tree)
	}
	tokens := parser.Tokens()
	parser.Parse("fe")
	if strings.Join(tokens, "") != "pa" {
		t.Errorf("expected tokens of earlier parse to be unaffected, have %v", tokens)
	}
}

func TestHybridRulesDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.earley")
	defer teardown()
	//
	rules, err := grammar.ParseRules(`
S     -> Syll
Syll  -> Peak
Peak  -> Chara "b"
Chara -> "a"
`)
	if err != nil {
		t.Fatal(err)
	}
	parser := NewParser(rules)
	if len(parser.nonterminals["Peak"]) != 0 {
		t.Errorf("expected hybrid rule to be dropped")
	}
	if !parser.Parse("ab").IsEmpty() {
		t.Errorf("expected 'ab' to be rejected")
	}
}
