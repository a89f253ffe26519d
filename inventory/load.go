package inventory

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/syllabo"
)

// Document is the file representation of an inventory. Files may be YAML, JSON,
// TOML or EDN; the format is determined by the file extension.
//
// Example (YAML):
//
//    onset_required: false
//    ignored: "-'"
//    phonemes:
//      - name: p
//        spellings: [p]
//        classes: [C]
//      - name: a
//        spellings: [a]
//        classes: [V]
//    classes:
//      - name: C
//      - name: V
//    sequences:
//      onset: [ [ [C] ] ]
//      peak:  [ [ [V] ] ]
//    suprasegmentals:
//      - name: stress
//        domain: syllable
//        spelling: { type: acute }
//        representation: { type: before, text: "'" }
//
type Document struct {
	OnsetRequired   bool         `yaml:"onset_required" json:"onset_required" toml:"onset_required"`
	Ignored         string       `yaml:"ignored" json:"ignored" toml:"ignored"`
	Phonemes        []PhonemeDoc `yaml:"phonemes" json:"phonemes" toml:"phonemes"`
	Classes         []ClassDoc   `yaml:"classes" json:"classes" toml:"classes"`
	Sequences       SequencesDoc `yaml:"sequences" json:"sequences" toml:"sequences"`
	Suprasegmentals []SupraDoc   `yaml:"suprasegmentals" json:"suprasegmentals" toml:"suprasegmentals"`
}

// PhonemeDoc is the file representation of a phoneme. Spellings of the form
// "text/_c" carry a context character c.
type PhonemeDoc struct {
	Name      string   `yaml:"name" json:"name" toml:"name"`
	Spellings []string `yaml:"spellings" json:"spellings" toml:"spellings"`
	Classes   []string `yaml:"classes" json:"classes" toml:"classes"`
	Notes     string   `yaml:"notes" json:"notes" toml:"notes"`
}

// ClassDoc is the file representation of a natural class. Features are given
// as "name=value" or just "name".
type ClassDoc struct {
	Name     string   `yaml:"name" json:"name" toml:"name"`
	Domain   string   `yaml:"domain" json:"domain" toml:"domain"`
	Features []string `yaml:"features" json:"features" toml:"features"`
}

// SequencesDoc lists the sequences per slot location. Every sequence is a list
// of positions, every position a list of alternative class names.
type SequencesDoc struct {
	Onset [][][]string `yaml:"onset" json:"onset" toml:"onset"`
	Peak  [][][]string `yaml:"peak" json:"peak" toml:"peak"`
	Coda  [][][]string `yaml:"coda" json:"coda" toml:"coda"`
}

// SupraDoc is the file representation of a suprasegmental.
type SupraDoc struct {
	Name           string   `yaml:"name" json:"name" toml:"name"`
	Domain         string   `yaml:"domain" json:"domain" toml:"domain"`
	Spelling       RuleDoc  `yaml:"spelling" json:"spelling" toml:"spelling"`
	Representation RuleDoc  `yaml:"representation" json:"representation" toml:"representation"`
	Applies        []string `yaml:"applies" json:"applies" toml:"applies"`
}

// RuleDoc is the file representation of a suprasegmental rule.
type RuleDoc struct {
	Type string `yaml:"type" json:"type" toml:"type"`
	Text string `yaml:"text" json:"text" toml:"text"`
}

// Load reads an inventory document from a file and converts it to an Inventory.
func Load(path string) (*Inventory, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("inventory: file %s: %w", path, err)
	}
	var doc Document
	if err := cleanenv.ReadConfig(path, &doc); err != nil {
		return nil, fmt.Errorf("inventory: read %s: %w", path, err)
	}
	inv, err := doc.Inventory()
	if err != nil {
		return nil, fmt.Errorf("inventory: %s: %w", path, err)
	}
	tracer().Infof("loaded inventory from %s: %d phonemes, %d classes, %d suprasegmentals",
		path, len(inv.phonemes), len(inv.classes), len(inv.supras))
	return inv, nil
}

// Inventory converts a document to an inventory. Unknown rule types or domains
// are errors; dangling references are not.
func (doc *Document) Inventory() (*Inventory, error) {
	inv := New()
	inv.SetOnsetRequired(doc.OnsetRequired)
	inv.SetIgnoredCharacters(doc.Ignored)
	for _, c := range doc.Classes {
		domain := PhonemeClass
		switch strings.ToLower(c.Domain) {
		case "", "phoneme":
		case "word":
			domain = WordClass
		default:
			return nil, fmt.Errorf("class %q: unknown domain %q", c.Name, c.Domain)
		}
		var features []Feature
		for _, f := range c.Features {
			name, value, _ := strings.Cut(f, "=")
			features = append(features, Feature{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
		}
		inv.AddClass(c.Name, domain, features...)
	}
	for _, pd := range doc.Phonemes {
		inv.AddPhoneme(pd.Name)
		var spellings []Spelling
		for _, s := range pd.Spellings {
			sp := ParseSpelling(s)
			if utf8.RuneCountInString(sp.Context) > 1 {
				return nil, fmt.Errorf("phoneme %q: spelling %q: context must be a single character", pd.Name, s)
			}
			spellings = append(spellings, sp)
		}
		_ = inv.SetSpellings(pd.Name, spellings...)
		if pd.Notes != "" {
			_ = inv.SetNotes(pd.Name, pd.Notes)
		}
		for _, c := range pd.Classes {
			if inv.Class(c) == nil { // implicitly declared phoneme class
				inv.AddClass(c, PhonemeClass)
			}
			_ = inv.AssignClass(c, pd.Name)
		}
	}
	for slot, seqs := range [...][][][]string{
		syllabo.Onset: doc.Sequences.Onset,
		syllabo.Peak:  doc.Sequences.Peak,
		syllabo.Coda:  doc.Sequences.Coda,
	} {
		for _, positions := range seqs {
			inv.AddSequence(syllabo.Slot(slot), positions...)
		}
	}
	for _, sd := range doc.Suprasegmentals {
		s := Suprasegmental{Name: sd.Name, Applies: sd.Applies}
		switch strings.ToLower(sd.Domain) {
		case "", "phoneme":
			s.Domain = PhonemeDomain
		case "syllable":
			s.Domain = SyllableDomain
		default:
			return nil, fmt.Errorf("suprasegmental %q: unknown domain %q", sd.Name, sd.Domain)
		}
		var err error
		if s.Spelling, err = sd.Spelling.spec(); err != nil {
			return nil, fmt.Errorf("suprasegmental %q: spelling: %w", sd.Name, err)
		}
		if sd.Representation.Type == "" {
			s.Representation = s.Spelling
		} else if s.Representation, err = sd.Representation.spec(); err != nil {
			return nil, fmt.Errorf("suprasegmental %q: representation: %w", sd.Name, err)
		}
		inv.AddSuprasegmental(s)
	}
	return inv, nil
}

func (rd RuleDoc) spec() (RuleSpec, error) {
	t, ok := RuleTypeFromString(rd.Type)
	if !ok {
		return RuleSpec{}, fmt.Errorf("unknown rule type %q", rd.Type)
	}
	return RuleSpec{Type: t, Text: rd.Text}, nil
}

// ParseSpelling reads a spelling in the notation of Spelling.String, i.e.
// "text" or "text/_c".
func ParseSpelling(s string) Spelling {
	if text, ctx, found := strings.Cut(s, "/_"); found && text != "" {
		return Spelling{Text: text, Context: ctx}
	}
	return Spelling{Text: s}
}
