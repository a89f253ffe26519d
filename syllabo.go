package syllabo

import "fmt"

// --- Slots -----------------------------------------------------------------

// Slot is a syllable-margin position: onset, peak or coda.
type Slot int

// Slots in the order they appear within a syllable.
const (
	Onset Slot = iota
	Peak
	Coda
)

// Slots lists all slot locations in syllable order.
var Slots = []Slot{Onset, Peak, Coda}

// String returns the name of a slot, which doubles as the grammar
// non-terminal for it.
func (s Slot) String() string {
	switch s {
	case Onset:
		return "Onset"
	case Peak:
		return "Peak"
	case Coda:
		return "Coda"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// SlotFromString returns the slot for a (case-sensitive) slot name.
func SlotFromString(name string) (Slot, bool) {
	for _, s := range Slots {
		if s.String() == name {
			return s, true
		}
	}
	return Onset, false
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. Chart items
// and parse tree nodes track which input positions they cover. A span denotes
// a start position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span enclosing s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
