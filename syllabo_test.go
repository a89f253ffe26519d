package syllabo

import "testing"

func TestSpan(t *testing.T) {
	var s Span
	if !s.IsNull() {
		t.Errorf("expected zero span to be null")
	}
	s = Span{2, 4}.Extend(Span{4, 7})
	if s.From() != 2 || s.To() != 7 || s.Len() != 5 {
		t.Errorf("expected (2…7) of length 5, have %s", s)
	}
	if s.Extend(Span{3, 5}) != s {
		t.Errorf("expected enclosed span not to extend %s", s)
	}
}

func TestSlotFromString(t *testing.T) {
	for _, slot := range Slots {
		if s, ok := SlotFromString(slot.String()); !ok || s != slot {
			t.Errorf("expected %s to be read back", slot)
		}
	}
	if _, ok := SlotFromString("Syll"); ok {
		t.Errorf("expected 'Syll' not to name a slot")
	}
}
