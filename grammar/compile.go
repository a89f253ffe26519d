package grammar

import (
	"unicode/utf8"

	"github.com/npillmayer/syllabo"
	"github.com/npillmayer/syllabo/inventory"
)

// Compile creates the rules of a grammar for the current state of an inventory.
//
// Rules are emitted in a fixed order: structural rules, syllable-wrapping rules
// for syllable-domain before/after suprasegmentals, slot rules (onset, peak,
// coda), class rules, phoneme-wrapping rules for phoneme-domain before/after
// suprasegmentals, spelling rules (including doubled and diacritic variants),
// and finally one terminal rule per character in order of first appearance.
//
// Compile never fails. Dangling references are traced as errors and skipped.
func Compile(inv *inventory.Inventory) []*Rule {
	b := NewBuilder()
	sets := inv.SupraSets()
	structuralRules(b, inv.Settings().OnsetRequired)
	syllableRules(b, sets)
	ix := inv.Index()
	for _, slot := range syllabo.Slots {
		for _, seq := range inv.Sequences(slot) {
			sequenceRules(b, inv, seq)
		}
	}
	ix.Each(func(class string, members []string) {
		for _, m := range members {
			b.LHS(Class(class)).N(Phon(m)).End()
		}
	})
	checkApplies(inv, sets)
	phons := inv.Phonemes()
	for _, p := range phons {
		wrappingRules(b, p, sets)
	}
	for _, p := range phons {
		spellingRules(b, p, sets)
	}
	rules := b.Terminals().Rules()
	tracer().Infof("compiled grammar with %d rules for inventory version %d", len(rules), inv.Version())
	return rules
}

func structuralRules(b *Builder, onsetRequired bool) {
	onset, peak, coda := syllabo.Onset.String(), syllabo.Peak.String(), syllabo.Coda.String()
	b.LHS(Start).N(Syllable).End()
	b.LHS(Start).N(Syllable).N(Start).End()
	b.LHS(Syllable).N(onset).N(peak).End()
	b.LHS(Syllable).N(onset).N(peak).N(coda).End()
	if !onsetRequired {
		b.LHS(Syllable).N(peak).End()
		b.LHS(Syllable).N(peak).N(coda).End()
	}
}

// Syllable-domain before/after suprasegmentals wrap a syllable. Empty texts
// would make Syll derive itself, so they are skipped.
func syllableRules(b *Builder, sets inventory.SupraSets) {
	for _, s := range inventory.InDomain(sets.Before, inventory.SyllableDomain) {
		if s.Spelling.Text == "" {
			tracer().Errorf("suprasegmental %q has empty spelling text, skipped", s.Name)
			continue
		}
		b.LHS(Syllable).C(s.Spelling.Text).N(Syllable).End()
	}
	for _, s := range inventory.InDomain(sets.After, inventory.SyllableDomain) {
		if s.Spelling.Text == "" {
			tracer().Errorf("suprasegmental %q has empty spelling text, skipped", s.Name)
			continue
		}
		b.LHS(Syllable).N(Syllable).C(s.Spelling.Text).End()
	}
}

func sequenceRules(b *Builder, inv *inventory.Inventory, seq *inventory.Sequence) {
	for _, alts := range seq.Positions {
		for _, class := range alts {
			if inv.Class(class) == nil {
				tracer().Errorf("%s sequence #%d refers to unknown class %q, skipped",
					seq.Slot, seq.ID, class)
				return
			}
		}
	}
	for _, combo := range Combinations(seq.Positions) {
		rb := b.LHS(seq.Slot.String())
		for _, class := range combo {
			rb.N(Class(class))
		}
		rb.End()
	}
}

// Combinations enumerates every choice of one alternative per position, with
// an odometer: the rightmost position advances first, carrying to the left on
// exhaustion. Positions without alternatives are skipped.
func Combinations(positions [][]string) [][]string {
	var live [][]string
	for _, alts := range positions {
		if len(alts) > 0 {
			live = append(live, alts)
		}
	}
	if len(live) == 0 {
		return nil
	}
	counter := make([]int, len(live))
	var combos [][]string
	for {
		combo := make([]string, len(live))
		for i, alts := range live {
			combo[i] = alts[counter[i]]
		}
		combos = append(combos, combo)
		i := len(live) - 1
		for ; i >= 0; i-- {
			if counter[i]++; counter[i] < len(live[i]) {
				break
			}
			counter[i] = 0
		}
		if i < 0 {
			return combos
		}
	}
}

// checkApplies traces applicable-phoneme entries of suprasegmentals which do
// not name a phoneme. Those entries will never match and are thus skipped.
func checkApplies(inv *inventory.Inventory, sets inventory.SupraSets) {
	for _, list := range [][]*inventory.Suprasegmental{sets.Diacritic, sets.Before, sets.After, sets.Doubled} {
		for _, s := range list {
			for _, p := range s.Applies {
				if inv.Phoneme(p) == nil {
					tracer().Errorf("suprasegmental %q applies to unknown phoneme %q, skipped", s.Name, p)
				}
			}
		}
	}
}

// Phoneme-domain before/after suprasegmentals wrap a phoneme, allowing for
// stacked marks.
func wrappingRules(b *Builder, p *inventory.Phoneme, sets inventory.SupraSets) {
	phon := Phon(p.Name)
	for _, s := range inventory.InDomain(sets.Before, inventory.PhonemeDomain) {
		if !s.AppliesTo(p.Name) {
			continue
		}
		if s.Spelling.Text == "" {
			tracer().Errorf("suprasegmental %q has empty spelling text, skipped", s.Name)
			continue
		}
		b.LHS(phon).C(s.Spelling.Text).N(phon).End()
	}
	for _, s := range inventory.InDomain(sets.After, inventory.PhonemeDomain) {
		if !s.AppliesTo(p.Name) {
			continue
		}
		if s.Spelling.Text == "" {
			tracer().Errorf("suprasegmental %q has empty spelling text, skipped", s.Name)
			continue
		}
		b.LHS(phon).N(phon).C(s.Spelling.Text).End()
	}
}

// For every spelling: diacritic variants, doubled variants, the plain spelling.
func spellingRules(b *Builder, p *inventory.Phoneme, sets inventory.SupraSets) {
	phon := Phon(p.Name)
	for _, sp := range p.Spellings {
		if sp.Text == "" {
			tracer().Errorf("phoneme %q has an empty spelling, skipped", p.Name)
			continue
		}
		if utf8.RuneCountInString(sp.Context) > 1 {
			tracer().Errorf("phoneme %q: context of spelling %s is not a single character, skipped",
				p.Name, sp)
			continue
		}
		for _, s := range sets.Diacritic {
			if applicable(s, p.Name) || (s.Domain == inventory.SyllableDomain && inventory.IsPlainVowel(sp.Text)) {
				marked := inventory.ApplyDiacritic(s.Spelling.Type, sp.Text)
				if marked == sp.Text {
					continue // diacritic not visible on this spelling
				}
				b.LHS(phon).C(marked).Context(sp.Context).End()
			}
		}
		for _, s := range sets.Doubled {
			if applicable(s, p.Name) || s.Domain == inventory.SyllableDomain {
				b.LHS(phon).C(sp.Text + sp.Text).Context(sp.Context).End()
			}
		}
		b.LHS(phon).C(sp.Text).Context(sp.Context).End()
	}
}

func applicable(s *inventory.Suprasegmental, phoneme string) bool {
	return s.Domain == inventory.PhonemeDomain && s.AppliesTo(phoneme)
}
