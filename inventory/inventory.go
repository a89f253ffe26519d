package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/syllabo"
)

// ErrUnknownPhoneme is returned by mutations referring to a phoneme which is not
// part of the inventory. ErrUnknownClass and ErrUnknownSupra likewise.
var (
	ErrUnknownPhoneme = errors.New("unknown phoneme")
	ErrUnknownClass   = errors.New("unknown natural class")
	ErrUnknownSupra   = errors.New("unknown suprasegmental")
)

// --- Phonemes --------------------------------------------------------------

// Spelling is a surface spelling of a phoneme. Context, if set, is a single
// character which has to follow the spelling immediately for it to apply.
type Spelling struct {
	Text    string
	Context string
}

func (s Spelling) String() string {
	if s.Context == "" {
		return s.Text
	}
	return s.Text + "/_" + s.Context
}

// Phoneme is an entry of the phoneme inventory. Spellings are many-to-one:
// several written forms may denote the same phoneme.
//
// Clients should treat fields as read-only and mutate phonemes through the
// Inventory, which keeps track of versions.
type Phoneme struct {
	Name      string
	Rank      int        // alphabetic order
	Spellings []Spelling // surface spellings
	Notes     string
	Classes   []string // names of natural classes this phoneme belongs to
}

// InClass is true if p is a member of natural class c.
func (p *Phoneme) InClass(c string) bool {
	for _, cl := range p.Classes {
		if cl == c {
			return true
		}
	}
	return false
}

// SpellingTexts returns the spelling texts of p, ignoring contexts.
func (p *Phoneme) SpellingTexts() []string {
	texts := make([]string, len(p.Spellings))
	for i, s := range p.Spellings {
		texts[i] = s.Text
	}
	return texts
}

// --- Natural classes -------------------------------------------------------

// ClassDomain tells if a natural class groups phonemes or words.
type ClassDomain int

// Domains of natural classes.
const (
	PhonemeClass ClassDomain = iota
	WordClass
)

// Feature is a (feature, value) pair of a natural class' feature bundle.
type Feature struct {
	Name  string
	Value string
}

// NaturalClass is a named group of phonemes (or words) sharing a bundle of
// features. For grammar generation only the name and the membership matter.
type NaturalClass struct {
	Name     string
	Domain   ClassDomain
	Features []Feature
}

// --- Phonotactics ----------------------------------------------------------

// Sequence is a legal shape of a syllable margin. Each position holds a set of
// natural class names, which are mutually exclusive alternatives.
type Sequence struct {
	Slot      syllabo.Slot
	ID        int
	Positions [][]string
}

// --- Suprasegmentals -------------------------------------------------------

// SupraDomain tells if a suprasegmental applies to phonemes or to syllables.
type SupraDomain int

// Domains of suprasegmentals.
const (
	PhonemeDomain SupraDomain = iota
	SyllableDomain
)

func (d SupraDomain) String() string {
	if d == SyllableDomain {
		return "syllable"
	}
	return "phoneme"
}

// RuleSpec is a spelling or representation rule of a suprasegmental. Text is
// only relevant for Before and After.
type RuleSpec struct {
	Type RuleType
	Text string
}

// Suprasegmental is a phonological feature layered onto a phoneme or a
// syllable (stress, tone, length, …). The spelling rule governs how it is
// written in words, the representation rule how it is written in phonemic
// transcription. Applies lists the phonemes a phoneme-domain suprasegmental
// may be put on.
type Suprasegmental struct {
	Name           string
	Domain         SupraDomain
	Spelling       RuleSpec
	Representation RuleSpec
	Applies        []string
}

// AppliesTo is true if phoneme p is in the applicable-phoneme set of s.
func (s *Suprasegmental) AppliesTo(p string) bool {
	for _, a := range s.Applies {
		if a == p {
			return true
		}
	}
	return false
}

// --- Settings --------------------------------------------------------------

// Settings are the global options of a phonology.
type Settings struct {
	OnsetRequired     bool   // syllables must have an onset
	IgnoredCharacters string // characters stripped from words before parsing
}

// === Inventory =============================================================

// Inventory is the complete linguistic data for a language. Create one with
// New. Every mutating method increments Version.
type Inventory struct {
	phonemes  []*Phoneme
	classes   []*NaturalClass
	sequences map[syllabo.Slot][]*Sequence
	supras    []*Suprasegmental
	settings  Settings
	version   uint64
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		sequences: make(map[syllabo.Slot][]*Sequence),
	}
}

// Version returns the current modification count of the inventory.
func (inv *Inventory) Version() uint64 {
	return inv.version
}

func (inv *Inventory) touch() {
	inv.version++
}

// --- Phoneme operations ----------------------------------------------------

// AddPhoneme adds a phoneme with a list of plain spellings. If a phoneme with
// this name already exists, its spellings are replaced.
func (inv *Inventory) AddPhoneme(name string, spellings ...string) *Phoneme {
	p := inv.Phoneme(name)
	if p == nil {
		p = &Phoneme{Name: name, Rank: len(inv.phonemes)}
		inv.phonemes = append(inv.phonemes, p)
	}
	p.Spellings = p.Spellings[:0]
	for _, s := range spellings {
		p.Spellings = append(p.Spellings, Spelling{Text: s})
	}
	inv.touch()
	return p
}

// Phoneme finds a phoneme by name. Returns nil if not found.
func (inv *Inventory) Phoneme(name string) *Phoneme {
	for _, p := range inv.phonemes {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Phonemes returns all phonemes in alphabetic order.
func (inv *Inventory) Phonemes() []*Phoneme {
	phons := append([]*Phoneme(nil), inv.phonemes...)
	sort.SliceStable(phons, func(i, j int) bool {
		return phons[i].Rank < phons[j].Rank
	})
	return phons
}

// DeletePhoneme removes a phoneme. Sequences and suprasegmentals referring to
// it are left untouched.
func (inv *Inventory) DeletePhoneme(name string) error {
	for i, p := range inv.phonemes {
		if p.Name == name {
			inv.phonemes = append(inv.phonemes[:i], inv.phonemes[i+1:]...)
			for _, q := range inv.phonemes {
				if q.Rank > p.Rank {
					q.Rank--
				}
			}
			inv.touch()
			return nil
		}
	}
	return fmt.Errorf("delete %q: %w", name, ErrUnknownPhoneme)
}

// MovePhoneme moves a phoneme up (delta < 0) or down (delta > 0) in
// alphabetic order, swapping ranks with its neighbours.
func (inv *Inventory) MovePhoneme(name string, delta int) error {
	p := inv.Phoneme(name)
	if p == nil {
		return fmt.Errorf("move %q: %w", name, ErrUnknownPhoneme)
	}
	phons := inv.Phonemes()
	target := p.Rank + delta
	if target < 0 {
		target = 0
	} else if target >= len(phons) {
		target = len(phons) - 1
	}
	for p.Rank != target {
		step := 1
		if target < p.Rank {
			step = -1
		}
		other := phons[p.Rank+step]
		other.Rank, p.Rank = p.Rank, p.Rank+step
		phons[other.Rank], phons[p.Rank] = other, p
	}
	inv.touch()
	return nil
}

// SetSpellings replaces the spellings of a phoneme.
func (inv *Inventory) SetSpellings(name string, spellings ...Spelling) error {
	p := inv.Phoneme(name)
	if p == nil {
		return fmt.Errorf("set spellings of %q: %w", name, ErrUnknownPhoneme)
	}
	p.Spellings = append([]Spelling(nil), spellings...)
	inv.touch()
	return nil
}

// SetNotes sets the free-text notes of a phoneme.
func (inv *Inventory) SetNotes(name string, notes string) error {
	p := inv.Phoneme(name)
	if p == nil {
		return fmt.Errorf("set notes of %q: %w", name, ErrUnknownPhoneme)
	}
	p.Notes = notes
	inv.touch()
	return nil
}

// Spellings returns a map from phoneme names to their spelling texts.
func (inv *Inventory) Spellings() map[string][]string {
	m := make(map[string][]string, len(inv.phonemes))
	for _, p := range inv.phonemes {
		m[p.Name] = p.SpellingTexts()
	}
	return m
}

// --- Natural class operations ----------------------------------------------

// AddClass adds a natural class. An existing class of the same name has its
// domain and features replaced.
func (inv *Inventory) AddClass(name string, domain ClassDomain, features ...Feature) *NaturalClass {
	c := inv.Class(name)
	if c == nil {
		c = &NaturalClass{Name: name}
		inv.classes = append(inv.classes, c)
	}
	c.Domain = domain
	c.Features = append([]Feature(nil), features...)
	inv.touch()
	return c
}

// Class finds a natural class by name. Returns nil if not found.
func (inv *Inventory) Class(name string) *NaturalClass {
	for _, c := range inv.classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Classes returns all natural classes in order of creation.
func (inv *Inventory) Classes() []*NaturalClass {
	return append([]*NaturalClass(nil), inv.classes...)
}

// DeleteClass removes a natural class and all memberships in it. Sequences
// referring to it are left untouched.
func (inv *Inventory) DeleteClass(name string) error {
	for i, c := range inv.classes {
		if c.Name == name {
			inv.classes = append(inv.classes[:i], inv.classes[i+1:]...)
			for _, p := range inv.phonemes {
				p.Classes = remove(p.Classes, name)
			}
			inv.touch()
			return nil
		}
	}
	return fmt.Errorf("delete class %q: %w", name, ErrUnknownClass)
}

// AssignClass makes a phoneme a member of a natural class.
func (inv *Inventory) AssignClass(class string, phoneme string) error {
	p := inv.Phoneme(phoneme)
	if p == nil {
		return fmt.Errorf("assign %q to class %q: %w", phoneme, class, ErrUnknownPhoneme)
	}
	if inv.Class(class) == nil {
		return fmt.Errorf("assign %q to class %q: %w", phoneme, class, ErrUnknownClass)
	}
	if !p.InClass(class) {
		p.Classes = append(p.Classes, class)
		inv.touch()
	}
	return nil
}

// UnassignClass removes a phoneme from a natural class.
func (inv *Inventory) UnassignClass(class string, phoneme string) error {
	p := inv.Phoneme(phoneme)
	if p == nil {
		return fmt.Errorf("unassign %q from class %q: %w", phoneme, class, ErrUnknownPhoneme)
	}
	p.Classes = remove(p.Classes, class)
	inv.touch()
	return nil
}

// PhonemesOfClasses returns, in alphabetic order, the phonemes belonging to at
// least one of the given classes.
func (inv *Inventory) PhonemesOfClasses(classes ...string) []string {
	var names []string
	for _, p := range inv.Phonemes() {
		for _, c := range classes {
			if p.InClass(c) {
				names = append(names, p.Name)
				break
			}
		}
	}
	return names
}

// --- Sequence operations ---------------------------------------------------

// AddSequence registers a legal sequence for a slot. Every position is a set of
// alternative natural class names. The new sequence receives the next free id.
func (inv *Inventory) AddSequence(slot syllabo.Slot, positions ...[]string) *Sequence {
	id := 0
	for _, s := range inv.sequences[slot] {
		if s.ID >= id {
			id = s.ID + 1
		}
	}
	seq := &Sequence{Slot: slot, ID: id}
	for _, pos := range positions {
		seq.Positions = append(seq.Positions, append([]string(nil), pos...))
	}
	inv.sequences[slot] = append(inv.sequences[slot], seq)
	inv.touch()
	return seq
}

// RemoveSequence removes the sequence with a given id from a slot.
func (inv *Inventory) RemoveSequence(slot syllabo.Slot, id int) bool {
	seqs := inv.sequences[slot]
	for i, s := range seqs {
		if s.ID == id {
			inv.sequences[slot] = append(seqs[:i], seqs[i+1:]...)
			inv.touch()
			return true
		}
	}
	return false
}

// Sequences returns the sequences for a slot, ordered by id.
func (inv *Inventory) Sequences(slot syllabo.Slot) []*Sequence {
	seqs := append([]*Sequence(nil), inv.sequences[slot]...)
	sort.SliceStable(seqs, func(i, j int) bool {
		return seqs[i].ID < seqs[j].ID
	})
	return seqs
}

// --- Suprasegmental operations ---------------------------------------------

// AddSuprasegmental adds (or replaces, by name) a suprasegmental.
func (inv *Inventory) AddSuprasegmental(s Suprasegmental) *Suprasegmental {
	s.Applies = append([]string(nil), s.Applies...)
	for i, old := range inv.supras {
		if old.Name == s.Name {
			inv.supras[i] = &s
			inv.touch()
			return &s
		}
	}
	inv.supras = append(inv.supras, &s)
	inv.touch()
	return &s
}

// Suprasegmental finds a suprasegmental by name. Returns nil if not found.
func (inv *Inventory) Suprasegmental(name string) *Suprasegmental {
	for _, s := range inv.supras {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Suprasegmentals returns all suprasegmentals in order of creation.
func (inv *Inventory) Suprasegmentals() []*Suprasegmental {
	return append([]*Suprasegmental(nil), inv.supras...)
}

// DeleteSuprasegmental removes a suprasegmental.
func (inv *Inventory) DeleteSuprasegmental(name string) error {
	for i, s := range inv.supras {
		if s.Name == name {
			inv.supras = append(inv.supras[:i], inv.supras[i+1:]...)
			inv.touch()
			return nil
		}
	}
	return fmt.Errorf("delete %q: %w", name, ErrUnknownSupra)
}

// SetSupraApplies sets the applicable-phoneme set of a suprasegmental.
func (inv *Inventory) SetSupraApplies(name string, phonemes ...string) error {
	s := inv.Suprasegmental(name)
	if s == nil {
		return fmt.Errorf("set phonemes of %q: %w", name, ErrUnknownSupra)
	}
	s.Applies = append([]string(nil), phonemes...)
	inv.touch()
	return nil
}

// --- Settings --------------------------------------------------------------

// Settings returns the global options.
func (inv *Inventory) Settings() Settings {
	return inv.settings
}

// SetOnsetRequired sets the "onset required" option.
func (inv *Inventory) SetOnsetRequired(b bool) {
	inv.settings.OnsetRequired = b
	inv.touch()
}

// SetIgnoredCharacters sets the characters to strip from words before parsing.
func (inv *Inventory) SetIgnoredCharacters(chars string) {
	inv.settings.IgnoredCharacters = chars
	inv.touch()
}

// ---------------------------------------------------------------------------

func remove(list []string, s string) []string {
	out := list[:0]
	for _, x := range list {
		if x != s {
			out = append(out, x)
		}
	}
	return out
}
