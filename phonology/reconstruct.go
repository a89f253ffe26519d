package phonology

import (
	"github.com/npillmayer/syllabo"
	"github.com/npillmayer/syllabo/earley"
	"github.com/npillmayer/syllabo/grammar"
	"github.com/npillmayer/syllabo/inventory"
)

// Transducer converts parse trees to syllable structures and back to text.
// It works on a snapshot of the inventory taken at creation time.
type Transducer struct {
	spellings map[string][]string
	supras    map[string]*inventory.Suprasegmental
	sets      inventory.SupraSets
	version   uint64
}

// NewTransducer creates a transducer for the current state of inv.
func NewTransducer(inv *inventory.Inventory) *Transducer {
	t := &Transducer{
		spellings: inv.Spellings(),
		supras:    make(map[string]*inventory.Suprasegmental),
		sets:      inv.SupraSets(),
		version:   inv.Version(),
	}
	for _, s := range inv.Suprasegmentals() {
		t.supras[s.Name] = s
	}
	return t
}

// Version returns the inventory version the transducer has been created for.
func (t *Transducer) Version() uint64 {
	return t.version
}

// Reconstruct walks a parse tree and returns the syllables of the word. For
// the failure sentinel, Reconstruct returns nil.
func (t *Transducer) Reconstruct(tree *earley.TreeNode) []Syllable {
	if tree.IsEmpty() {
		return nil
	}
	var nodes []*earley.TreeNode
	for S := tree.Child(grammar.Start); S != nil; S = S.Child(grammar.Start) {
		if syll := S.Child(grammar.Syllable); syll != nil {
			nodes = append(nodes, syll)
		}
	}
	syllables := make([]Syllable, 0, len(nodes))
	for _, node := range nodes {
		syllables = append(syllables, t.syllable(node))
	}
	tracer().Debugf("reconstructed %d syllables", len(syllables))
	return syllables
}

func (t *Transducer) syllable(node *earley.TreeNode) Syllable {
	var syl Syllable
	isSyll := func(n *earley.TreeNode) bool { return n.Label == grammar.Syllable }
	for {
		inner, before, after := peel(node, isSyll)
		if inner == nil {
			break
		}
		syl.Supras = t.matchWrapping(syl.Supras, inventory.SyllableDomain, before, after)
		node = inner
	}
	for _, segment := range node.Children {
		slot, ok := syllabo.SlotFromString(segment.Label)
		if !ok {
			continue
		}
		for _, class := range segment.Children {
			if class.IsLeaf() || !grammar.IsPhon(class.Children[0].Label) {
				continue
			}
			syl.append(slot, t.phoneme(class.Children[0], slot, &syl))
		}
	}
	return syl
}

func (t *Transducer) phoneme(node *earley.TreeNode, slot syllabo.Slot, syl *Syllable) SlotPhoneme {
	p := SlotPhoneme{Name: grammar.PhonemeOf(node.Label)}
	isPhon := func(n *earley.TreeNode) bool { return grammar.IsPhon(n.Label) }
	for {
		inner, before, after := peel(node, isPhon)
		if inner == nil {
			break
		}
		p.Supras = t.matchWrapping(p.Supras, inventory.PhonemeDomain, before, after)
		node = inner
	}
	spelling := node.Text()
	registered := t.spellings[p.Name]
	if contains(registered, spelling) {
		return p
	}
	for _, sp := range registered {
		if spelling == sp+sp {
			if t.attach(t.sets.Doubled, &p, slot, syl) {
				return p
			}
		}
	}
	for _, sp := range registered {
		for _, s := range t.sets.Diacritic {
			if spelling != inventory.ApplyDiacritic(s.Spelling.Type, sp) {
				continue
			}
			if t.attach(sameType(t.sets.Diacritic, s.Spelling.Type), &p, slot, syl) {
				return p
			}
		}
	}
	tracer().Debugf("cannot decode spelling %q of phoneme %q", spelling, p.Name)
	return p
}

// attach puts the first applicable candidate onto the phoneme. If there is
// none, a syllable-domain candidate is put onto the syllable, given the phoneme
// is in the peak.
func (t *Transducer) attach(candidates []*inventory.Suprasegmental, p *SlotPhoneme,
	slot syllabo.Slot, syl *Syllable) bool {
	//
	for _, s := range candidates {
		if s.Domain == inventory.PhonemeDomain && s.AppliesTo(p.Name) {
			p.Supras = append(p.Supras, s.Name)
			return true
		}
	}
	if slot != syllabo.Peak {
		return false
	}
	for _, s := range candidates {
		if s.Domain == inventory.SyllableDomain {
			syl.Supras = append(syl.Supras, s.Name)
			return true
		}
	}
	return false
}

// matchWrapping matches the texts of a wrapping layer against before- and
// after-suprasegmentals of a domain. For before-texts the first match wins,
// after-texts collect every match. Unmatched text is dropped.
func (t *Transducer) matchWrapping(supras []string, d inventory.SupraDomain, before, after string) []string {
	if before != "" {
		if s := inventory.FindByText(t.sets.Before, d, before); s != nil {
			supras = append(supras, s.Name)
		}
	}
	if after != "" {
		for _, s := range inventory.InDomain(t.sets.After, d) {
			if s.Spelling.Text == after {
				supras = append(supras, s.Name)
			}
		}
	}
	return supras
}

// peel finds the nested child of a wrapping node, together with the text
// of the children before and after it. inner is nil if there is no nesting.
func peel(node *earley.TreeNode, nested func(*earley.TreeNode) bool) (inner *earley.TreeNode, before, after string) {
	for _, ch := range node.Children {
		if inner == nil && nested(ch) {
			inner = ch
			continue
		}
		if !grammar.IsChar(ch.Label) {
			continue
		}
		if inner == nil {
			before += ch.Payload
		} else {
			after += ch.Payload
		}
	}
	return
}

func sameType(list []*inventory.Suprasegmental, rt inventory.RuleType) []*inventory.Suprasegmental {
	var sel []*inventory.Suprasegmental
	for _, s := range list {
		if s.Spelling.Type == rt {
			sel = append(sel, s)
		}
	}
	return sel
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
