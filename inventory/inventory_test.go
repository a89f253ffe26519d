package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/syllabo"
)

func TestVersionBumps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	inv := New()
	if inv.Version() != 0 {
		t.Fatalf("expected new inventory to have version 0, has %d", inv.Version())
	}
	v := inv.Version()
	steps := []func(){
		func() { inv.AddPhoneme("p", "p") },
		func() { inv.AddClass("C", PhonemeClass) },
		func() { _ = inv.AssignClass("C", "p") },
		func() { inv.AddSequence(syllabo.Onset, []string{"C"}) },
		func() { inv.AddSuprasegmental(Suprasegmental{Name: "stress"}) },
		func() { inv.SetOnsetRequired(true) },
		func() { inv.SetIgnoredCharacters("-") },
		func() { _ = inv.SetSpellings("p", Spelling{Text: "pp"}) },
		func() { _ = inv.DeletePhoneme("p") },
	}
	for i, step := range steps {
		step()
		if inv.Version() <= v {
			t.Errorf("step #%d did not bump version", i+1)
		}
		v = inv.Version()
	}
}

func TestPhonemeRanks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	inv := New()
	inv.AddPhoneme("a", "a")
	inv.AddPhoneme("b", "b")
	inv.AddPhoneme("c", "c")
	if err := inv.MovePhoneme("c", -2); err != nil {
		t.Fatal(err)
	}
	if got := names(inv.Phonemes()); got != "c a b" {
		t.Errorf("expected order 'c a b', have '%s'", got)
	}
	if err := inv.DeletePhoneme("a"); err != nil {
		t.Fatal(err)
	}
	if got := names(inv.Phonemes()); got != "c b" {
		t.Errorf("expected order 'c b', have '%s'", got)
	}
	if err := inv.MovePhoneme("x", 1); !errors.Is(err, ErrUnknownPhoneme) {
		t.Errorf("expected ErrUnknownPhoneme, have %v", err)
	}
}

func TestClassMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	inv := New()
	inv.AddPhoneme("p", "p")
	inv.AddPhoneme("t", "t")
	inv.AddPhoneme("a", "a")
	inv.AddClass("V", PhonemeClass)
	inv.AddClass("C", PhonemeClass, Feature{Name: "consonantal", Value: "+"})
	_ = inv.AssignClass("C", "t")
	_ = inv.AssignClass("C", "p")
	_ = inv.AssignClass("V", "a")
	if err := inv.AssignClass("X", "a"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, have %v", err)
	}
	if got := inv.PhonemesOfClasses("C"); len(got) != 2 || got[0] != "p" || got[1] != "t" {
		t.Errorf("expected members [p t] of C, have %v", got)
	}
	ix := inv.Index()
	var order []string
	ix.Each(func(class string, members []string) {
		order = append(order, class)
	})
	if len(order) != 2 || order[0] != "C" || order[1] != "V" {
		t.Errorf("expected class index to iterate C, V; have %v", order)
	}
	if m := ix.Members("V"); len(m) != 1 || m[0] != "a" {
		t.Errorf("expected members [a] of V, have %v", m)
	}
	_ = inv.DeleteClass("C")
	if inv.Phoneme("p").InClass("C") {
		t.Errorf("expected membership in C to be removed with the class")
	}
	if !ix.Has("C") {
		t.Errorf("expected class index to be a snapshot")
	}
}

func TestSequenceIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	inv := New()
	s0 := inv.AddSequence(syllabo.Onset, []string{"C"})
	s1 := inv.AddSequence(syllabo.Onset, []string{"C"}, []string{"L"})
	c0 := inv.AddSequence(syllabo.Coda, []string{"C"})
	if s0.ID != 0 || s1.ID != 1 || c0.ID != 0 {
		t.Errorf("unexpected sequence ids %d, %d, %d", s0.ID, s1.ID, c0.ID)
	}
	if !inv.RemoveSequence(syllabo.Onset, 0) {
		t.Errorf("expected sequence 0 to be removed")
	}
	s2 := inv.AddSequence(syllabo.Onset, []string{"V"})
	if s2.ID != 2 {
		t.Errorf("expected next id to be 2, is %d", s2.ID)
	}
	seqs := inv.Sequences(syllabo.Onset)
	if len(seqs) != 2 || seqs[0].ID != 1 || seqs[1].ID != 2 {
		t.Errorf("expected onset sequences 1, 2; have %v", seqs)
	}
}

func TestSupraSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	inv := New()
	inv.AddSuprasegmental(Suprasegmental{Name: "stress", Domain: SyllableDomain,
		Spelling: RuleSpec{Type: Acute}})
	inv.AddSuprasegmental(Suprasegmental{Name: "long", Domain: PhonemeDomain,
		Spelling: RuleSpec{Type: Doubled}})
	inv.AddSuprasegmental(Suprasegmental{Name: "glottal", Domain: SyllableDomain,
		Spelling: RuleSpec{Type: Before, Text: "'"}})
	inv.AddSuprasegmental(Suprasegmental{Name: "nasal", Domain: PhonemeDomain,
		Spelling: RuleSpec{Type: After, Text: "~"}})
	sets := inv.SupraSets()
	if len(sets.Diacritic) != 1 || len(sets.Doubled) != 1 || len(sets.Before) != 1 || len(sets.After) != 1 {
		t.Fatalf("unexpected partitioning: %+v", sets)
	}
	if s := FindByText(sets.Before, SyllableDomain, "'"); s == nil || s.Name != "glottal" {
		t.Errorf("expected to find 'glottal' by text")
	}
	if s := FindByText(sets.Before, PhonemeDomain, "'"); s != nil {
		t.Errorf("expected domain to be respected, found %v", s.Name)
	}
}

func TestDiacritics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	for _, tc := range []struct {
		t        RuleType
		in, want string
	}{
		{Acute, "a", "á"},
		{Grave, "E", "È"},
		{Circumflex, "ou", "ôû"},
		{Diaeresis, "y", "ÿ"},
		{Macron, "pa", "pā"},
		{Before, "a", "a"},
	} {
		if got := ApplyDiacritic(tc.t, tc.in); got != tc.want {
			t.Errorf("%s(%q): expected %q, have %q", tc.t, tc.in, tc.want, got)
		}
	}
	if !IsPlainVowel("a") || IsPlainVowel("aa") || IsPlainVowel("p") {
		t.Errorf("IsPlainVowel misclassifies")
	}
	if rt, ok := RuleTypeFromString("umlaut"); !ok || rt != Diaeresis {
		t.Errorf("expected 'umlaut' to be read as diaeresis")
	}
}

func TestLoadDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.inventory")
	defer teardown()
	//
	doc := `
onset_required: true
ignored: "-"
classes:
  - name: C
    features: [ "consonantal=+" ]
phonemes:
  - name: p
    spellings: [ p ]
    classes: [ C ]
  - name: a
    spellings: [ a, "ah/_h" ]
    classes: [ V ]
sequences:
  onset: [ [ [ C ] ] ]
  peak:  [ [ [ V ] ] ]
suprasegmentals:
  - name: stress
    domain: syllable
    spelling: { type: acute }
    representation: { type: before, text: "'" }
`
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	inv, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Settings().OnsetRequired || inv.Settings().IgnoredCharacters != "-" {
		t.Errorf("settings not loaded: %+v", inv.Settings())
	}
	a := inv.Phoneme("a")
	if a == nil || len(a.Spellings) != 2 || a.Spellings[1].Context != "h" {
		t.Fatalf("phoneme 'a' not loaded correctly: %+v", a)
	}
	if inv.Class("V") == nil {
		t.Errorf("expected implicitly declared class V")
	}
	if len(inv.Sequences(syllabo.Onset)) != 1 || len(inv.Sequences(syllabo.Coda)) != 0 {
		t.Errorf("sequences not loaded correctly")
	}
	s := inv.Suprasegmental("stress")
	if s == nil || s.Spelling.Type != Acute || s.Representation.Type != Before || s.Representation.Text != "'" {
		t.Errorf("suprasegmental not loaded correctly: %+v", s)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	bad := Document{Phonemes: []PhonemeDoc{{Name: "f", Spellings: []string{"ph/_ab"}}}}
	if _, err := bad.Inventory(); err == nil {
		t.Errorf("expected error for context of more than one character")
	}
	good := Document{Phonemes: []PhonemeDoc{{Name: "f", Spellings: []string{"ph/_a"}}}}
	if inv, err := good.Inventory(); err != nil || inv.Phoneme("f").Spellings[0] != (Spelling{Text: "ph", Context: "a"}) {
		t.Errorf("expected spelling 'ph' in context 'a', have %v", err)
	}
}

func names(phons []*Phoneme) string {
	s := ""
	for i, p := range phons {
		if i > 0 {
			s += " "
		}
		s += p.Name
	}
	return s
}
