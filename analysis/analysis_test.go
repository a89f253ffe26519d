package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/syllabo"
	"github.com/npillmayer/syllabo/inventory"
	"github.com/npillmayer/syllabo/phonology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInventory() *inventory.Inventory {
	inv := inventory.New()
	inv.AddPhoneme("p", "p")
	inv.AddPhoneme("a", "a")
	inv.AddClass("C", inventory.PhonemeClass)
	inv.AddClass("V", inventory.PhonemeClass)
	_ = inv.AssignClass("C", "p")
	_ = inv.AssignClass("V", "a")
	inv.AddSequence(syllabo.Onset, []string{"C"})
	inv.AddSequence(syllabo.Peak, []string{"V"})
	inv.SetOnsetRequired(true)
	return inv
}

type words map[uuid.UUID]string

func (w words) WordText(id uuid.UUID) (string, error) {
	if text, ok := w[id]; ok {
		return text, nil
	}
	return "", errors.New("no such word")
}

type sink struct {
	stored map[uuid.UUID][]phonology.Syllable
	fail   bool
}

func (s *sink) SetPhonology(id uuid.UUID, syllables []phonology.Syllable) error {
	if s.fail {
		return errors.New("sink closed")
	}
	s.stored[id] = syllables
	return nil
}

type recorder struct {
	parsed   []uuid.UUID
	progress [][2]int
	finished []Stats
	cancel   func() // called after the first word, if set
}

func (r *recorder) WordParsed(id uuid.UUID, syllables []phonology.Syllable, ok bool) {
	r.parsed = append(r.parsed, id)
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *recorder) Progress(done, total int) {
	r.progress = append(r.progress, [2]int{done, total})
}

func (r *recorder) Finished(stats Stats) {
	r.finished = append(r.finished, stats)
}

func TestAnalyze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	a := New(makeInventory())
	syls, ok := a.Analyze("papa")
	require.True(t, ok)
	require.Len(t, syls, 2)
	assert.Equal(t, "papa", a.Spell(syls))
	assert.Equal(t, "pa.pa", a.Represent(syls))
	_, ok = a.Analyze("ap")
	assert.False(t, ok)
	assert.True(t, a.Parse("ap").IsEmpty())
	assert.Len(t, a.Alternatives("pa"), 1)
	assert.Nil(t, a.Alternatives("x"))
}

func TestRecompileOnChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	inv := makeInventory()
	a := New(inv)
	_, ok := a.Analyze("ta")
	require.False(t, ok)
	n := len(a.Rules())
	inv.AddPhoneme("t", "t")
	require.NoError(t, inv.AssignClass("C", "t"))
	_, ok = a.Analyze("ta")
	assert.True(t, ok, "expected new phoneme to be picked up")
	assert.Greater(t, len(a.Rules()), n)
}

func TestIgnoredCharactersOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	inv := makeInventory()
	inv.SetIgnoredCharacters("-")
	_, ok := New(inv).Analyze("pa-pa")
	assert.True(t, ok)
	_, ok = New(inv, IgnoredCharacters("")).Analyze("pa-pa")
	assert.False(t, ok)
}

func TestReanalyze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	w := words{}
	var ids []uuid.UUID
	for _, text := range []string{"pa", "papa", "ap", "pa", "pppa"} {
		id := uuid.New()
		w[id] = text
		ids = append(ids, id)
	}
	s := &sink{stored: map[uuid.UUID][]phonology.Syllable{}}
	r := &recorder{}
	a := New(makeInventory(), ChunkSize(2))
	stats, err := a.Reanalyze(context.Background(), ids, w, s, r)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 5, stats.Done)
	assert.Equal(t, 3, stats.Parsed)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, ids, r.parsed)
	assert.Equal(t, [][2]int{{2, 5}, {4, 5}, {5, 5}}, r.progress)
	require.Len(t, r.finished, 1)
	assert.Equal(t, stats, r.finished[0])
	require.Len(t, s.stored, 5)
	assert.Len(t, s.stored[ids[1]], 2)
	assert.Nil(t, s.stored[ids[2]], "expected failed word to be stored empty")
}

func TestReanalyzeCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	w := words{}
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id := uuid.New()
		w[id] = "pa"
		ids = append(ids, id)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &recorder{cancel: cancel}
	s := &sink{stored: map[uuid.UUID][]phonology.Syllable{}}
	stats, err := New(makeInventory()).Reanalyze(ctx, ids, w, s, r)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, stats.Done)
	assert.Len(t, r.parsed, 1)
	require.Len(t, r.finished, 1)
	assert.Equal(t, 1, r.finished[0].Done)
}

func TestReanalyzeSinkError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabo.analysis")
	defer teardown()
	//
	id := uuid.New()
	r := &recorder{}
	_, err := New(makeInventory()).Reanalyze(context.Background(), []uuid.UUID{id},
		words{id: "pa"}, &sink{fail: true}, r)
	assert.Error(t, err)
	assert.Empty(t, r.parsed)
	assert.Len(t, r.finished, 1)
	_, err = New(makeInventory()).Reanalyze(context.Background(), []uuid.UUID{uuid.New()},
		words{}, &sink{stored: map[uuid.UUID][]phonology.Syllable{}}, nil)
	assert.Error(t, err)
}
