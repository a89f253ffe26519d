package lexicon

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/syllabo/phonology"
)

// ErrUnknownWord is returned for identifiers not present in a store.
var ErrUnknownWord = errors.New("unknown word")

// Word is an entry of the lexicon.
type Word struct {
	ID        uuid.UUID
	Text      string
	Gloss     string
	Syllables []phonology.Syllable // nil if not analysed or not parseable
}

// Store is an in-memory lexicon. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	words map[uuid.UUID]*Word
	order []uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{words: make(map[uuid.UUID]*Word)}
}

// Add enters a new word and returns its identifier.
func (s *Store) Add(text, gloss string) uuid.UUID {
	id := uuid.New()
	s.Put(Word{ID: id, Text: text, Gloss: gloss})
	return id
}

// Put enters w, replacing a word with the same identifier.
func (s *Store) Put(w Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.words[w.ID]; !exists {
		s.order = append(s.order, w.ID)
	}
	s.words[w.ID] = &w
}

// Remove deletes a word.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.words[id]; !exists {
		return fmt.Errorf("remove %s: %w", id, ErrUnknownWord)
	}
	delete(s.words, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Word returns a copy of a word.
func (s *Store) Word(id uuid.UUID) (Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.words[id]
	if !ok {
		return Word{}, fmt.Errorf("word %s: %w", id, ErrUnknownWord)
	}
	return *w, nil
}

// Len returns the number of words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// IDs returns the identifiers of all words, in order of insertion.
func (s *Store) IDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Find returns the identifiers of words with the given text.
func (s *Store) Find(text string) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []uuid.UUID
	for _, id := range s.order {
		if s.words[id].Text == text {
			ids = append(ids, id)
		}
	}
	return ids
}

// WordText is part of interface analysis.WordSource.
func (s *Store) WordText(id uuid.UUID) (string, error) {
	w, err := s.Word(id)
	if err != nil {
		return "", err
	}
	return w.Text, nil
}

// SetPhonology is part of interface analysis.PhonologySink.
func (s *Store) SetPhonology(id uuid.UUID, syllables []phonology.Syllable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.words[id]
	if !ok {
		return fmt.Errorf("set phonology of %s: %w", id, ErrUnknownWord)
	}
	w.Syllables = syllables
	return nil
}

// Phonology returns the stored syllables of a word.
func (s *Store) Phonology(id uuid.UUID) ([]phonology.Syllable, error) {
	w, err := s.Word(id)
	if err != nil {
		return nil, err
	}
	return w.Syllables, nil
}

// --- Loading ---------------------------------------------------------------

// Document is the file representation of a word list.
//
//    words:
//      - id: 6f1c2e0a-55d4-4f0e-9d4b-3c1d2a0b9e11
//        text: papa
//        gloss: father
//      - text: pa
//
// Words without an id get a fresh one.
type Document struct {
	Words []WordDoc `yaml:"words" json:"words" toml:"words"`
}

// WordDoc is the file representation of a word.
type WordDoc struct {
	ID    string `yaml:"id" json:"id" toml:"id"`
	Text  string `yaml:"text" json:"text" toml:"text"`
	Gloss string `yaml:"gloss" json:"gloss" toml:"gloss"`
}

// Load reads a word list from a file into a new store.
func Load(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("lexicon: file %s: %w", path, err)
	}
	var doc Document
	if err := cleanenv.ReadConfig(path, &doc); err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	s := NewStore()
	for i, wd := range doc.Words {
		id := uuid.New()
		if wd.ID != "" {
			var err error
			if id, err = uuid.Parse(wd.ID); err != nil {
				return nil, fmt.Errorf("lexicon: %s: word #%d: %w", path, i+1, err)
			}
		}
		s.Put(Word{ID: id, Text: wd.Text, Gloss: wd.Gloss})
	}
	tracer().Infof("loaded %d words from %s", s.Len(), path)
	return s, nil
}
