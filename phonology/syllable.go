package phonology

import (
	"strings"

	"github.com/npillmayer/syllabo"
)

// SlotPhoneme is a phoneme in a slot of a syllable, together with the
// suprasegmentals applied to it.
type SlotPhoneme struct {
	Name   string
	Supras []string
}

// Syllable is the phonological structure of a single syllable.
type Syllable struct {
	Onset  []SlotPhoneme
	Peak   []SlotPhoneme
	Coda   []SlotPhoneme
	Supras []string // suprasegmentals of the syllable as a whole
}

// Slot returns the phonemes of a slot.
func (s *Syllable) Slot(slot syllabo.Slot) []SlotPhoneme {
	switch slot {
	case syllabo.Onset:
		return s.Onset
	case syllabo.Peak:
		return s.Peak
	case syllabo.Coda:
		return s.Coda
	}
	return nil
}

func (s *Syllable) append(slot syllabo.Slot, p SlotPhoneme) {
	switch slot {
	case syllabo.Onset:
		s.Onset = append(s.Onset, p)
	case syllabo.Peak:
		s.Peak = append(s.Peak, p)
	case syllabo.Coda:
		s.Coda = append(s.Coda, p)
	}
}

// String is a debugging representation, e.g. "[p|a{long}|-]{stress}".
func (s Syllable) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slot := range syllabo.Slots {
		if i > 0 {
			b.WriteByte('|')
		}
		phons := s.Slot(slot)
		if len(phons) == 0 {
			b.WriteByte('-')
		}
		for j, p := range phons {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Name)
			if len(p.Supras) > 0 {
				b.WriteString("{" + strings.Join(p.Supras, ",") + "}")
			}
		}
	}
	b.WriteByte(']')
	if len(s.Supras) > 0 {
		b.WriteString("{" + strings.Join(s.Supras, ",") + "}")
	}
	return b.String()
}
