package phonology

import (
	"strings"

	"github.com/npillmayer/syllabo/inventory"
)

// SyllableSeparator separates syllables in phonemic representations.
const SyllableSeparator = "."

// Spell renders syllables as the surface spelling of a word. Every phoneme is
// written with its first registered spelling. Syllables are not separated.
//
// For words analysed by Reconstruct, Spell(Reconstruct(tree)) reproduces the
// parsed word (modulo ignored characters and choice of spelling variants).
func (t *Transducer) Spell(syllables []Syllable) string {
	var b strings.Builder
	for _, syl := range syllables {
		b.WriteString(t.spellSyllable(syl))
	}
	return b.String()
}

func (t *Transducer) spellSyllable(syl Syllable) string {
	onset := t.spellPhonemes(syl.Onset)
	peak := t.spellPhonemes(syl.Peak)
	coda := t.spellPhonemes(syl.Coda)
	var wrappers []*inventory.Suprasegmental
	marked := make([]bool, len(peak))
	for _, name := range syl.Supras {
		s := t.supras[name]
		if s == nil {
			continue
		}
		switch rt := s.Spelling.Type; {
		case rt == inventory.Before || rt == inventory.After:
			wrappers = append(wrappers, s)
		case rt == inventory.Doubled:
			for i := range peak {
				if !marked[i] {
					peak[i].core += peak[i].core
					marked[i] = true
					break
				}
			}
		default:
			for i := range peak {
				if !marked[i] && inventory.IsPlainVowel(peak[i].core) {
					peak[i].core = inventory.ApplyDiacritic(rt, peak[i].core)
					marked[i] = true
					break
				}
			}
		}
	}
	text := join(onset) + join(peak) + join(coda)
	return wrap(text, wrappers, func(s *inventory.Suprasegmental) inventory.RuleSpec {
		return s.Spelling
	})
}

// spelled is a phoneme's spelling during rendering: the core spelling and
// the wrapping suprasegmentals, outermost first.
type spelled struct {
	core     string
	wrappers []*inventory.Suprasegmental
}

func (t *Transducer) spellPhonemes(phons []SlotPhoneme) []spelled {
	out := make([]spelled, len(phons))
	for i, p := range phons {
		out[i].core = p.Name
		if sp := t.spellings[p.Name]; len(sp) > 0 {
			out[i].core = sp[0]
		}
		for _, name := range p.Supras {
			s := t.supras[name]
			if s == nil {
				continue
			}
			switch rt := s.Spelling.Type; {
			case rt == inventory.Before || rt == inventory.After:
				out[i].wrappers = append(out[i].wrappers, s)
			case rt == inventory.Doubled:
				out[i].core += out[i].core
			default:
				out[i].core = inventory.ApplyDiacritic(rt, out[i].core)
			}
		}
	}
	return out
}

func join(phons []spelled) string {
	var b strings.Builder
	for _, p := range phons {
		b.WriteString(wrap(p.core, p.wrappers, func(s *inventory.Suprasegmental) inventory.RuleSpec {
			return s.Spelling
		}))
	}
	return b.String()
}

// wrap puts before/after texts around text, innermost wrapper last in list.
func wrap(text string, wrappers []*inventory.Suprasegmental,
	rule func(*inventory.Suprasegmental) inventory.RuleSpec) string {
	//
	for i := len(wrappers) - 1; i >= 0; i-- {
		r := rule(wrappers[i])
		switch r.Type {
		case inventory.Before:
			text = r.Text + text
		case inventory.After:
			text = text + r.Text
		}
	}
	return text
}

// Represent renders syllables as a phonemic representation, using the
// representation rules of suprasegmentals over phoneme names. Syllables are
// separated by SyllableSeparator.
func (t *Transducer) Represent(syllables []Syllable) string {
	parts := make([]string, 0, len(syllables))
	for _, syl := range syllables {
		parts = append(parts, t.representSyllable(syl))
	}
	return strings.Join(parts, SyllableSeparator)
}

func (t *Transducer) representSyllable(syl Syllable) string {
	var before, after string
	var peakMarks []inventory.RuleSpec
	for _, name := range syl.Supras {
		s := t.supras[name]
		if s == nil {
			continue
		}
		switch r := s.Representation; r.Type {
		case inventory.Before:
			before += r.Text
		case inventory.After:
			after += r.Text
		default:
			peakMarks = append(peakMarks, r)
		}
	}
	var b strings.Builder
	b.WriteString(before)
	b.WriteString(t.representPhonemes(syl.Onset, nil))
	b.WriteString(t.representPhonemes(syl.Peak, peakMarks))
	b.WriteString(t.representPhonemes(syl.Coda, nil))
	b.WriteString(after)
	return b.String()
}

func (t *Transducer) representPhonemes(phons []SlotPhoneme, marks []inventory.RuleSpec) string {
	var b strings.Builder
	for _, p := range phons {
		text := p.Name
		for _, r := range marks {
			text = applyRule(r, text)
		}
		for _, name := range p.Supras {
			if s := t.supras[name]; s != nil {
				text = applyRule(s.Representation, text)
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

func applyRule(r inventory.RuleSpec, text string) string {
	switch r.Type {
	case inventory.Before:
		return r.Text + text
	case inventory.After:
		return text + r.Text
	case inventory.Doubled:
		return text + text
	}
	return inventory.ApplyDiacritic(r.Type, text)
}
