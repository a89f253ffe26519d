package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/syllabo/phonology"
)

// WordSource provides the text of words.
type WordSource interface {
	WordText(id uuid.UUID) (string, error)
}

// PhonologySink stores the syllable structure of words. Words which cannot be
// parsed are stored with an empty structure.
type PhonologySink interface {
	SetPhonology(id uuid.UUID, syllables []phonology.Syllable) error
}

// Listener receives notifications during a batch run.
type Listener interface {
	WordParsed(id uuid.UUID, syllables []phonology.Syllable, ok bool)
	Progress(done, total int)
	Finished(stats Stats)
}

// Stats summarizes a batch run.
type Stats struct {
	Total    int // number of words requested
	Done     int // number of words processed
	Parsed   int // number of words with an analysis
	Failed   int // number of words without an analysis
	Duration time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d words, %d parsed, %d failed, in %s",
		s.Done, s.Total, s.Parsed, s.Failed, s.Duration.Round(time.Millisecond))
}

// Reanalyze analyses every word in ids, in order, and stores the results in
// sink. It notifies l once per word, every ChunkSize words and when done;
// l may be nil.
//
// Cancellation is checked between words. A cancelled run returns ctx.Err(),
// an I/O error of source or sink ends the run and is returned as well. In
// both cases Finished is still called, with the statistics so far.
func (a *Analyzer) Reanalyze(ctx context.Context, ids []uuid.UUID, source WordSource,
	sink PhonologySink, l Listener) (stats Stats, err error) {
	//
	if l == nil {
		l = NopListener{}
	}
	start := time.Now()
	stats.Total = len(ids)
	defer func() {
		stats.Duration = time.Since(start)
		tracer().Infof("batch finished: %s", stats)
		l.Finished(stats)
	}()
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			tracer().Infof("batch cancelled after %d words", stats.Done)
			return
		}
		var word string
		if word, err = source.WordText(id); err != nil {
			err = fmt.Errorf("reading word %s: %w", id, err)
			return
		}
		syllables, ok := a.Analyze(word)
		if err = sink.SetPhonology(id, syllables); err != nil {
			err = fmt.Errorf("storing phonology of word %s: %w", id, err)
			return
		}
		stats.Done++
		if ok {
			stats.Parsed++
		} else {
			stats.Failed++
		}
		l.WordParsed(id, syllables, ok)
		if stats.Done%a.chunkSize == 0 || stats.Done == stats.Total {
			l.Progress(stats.Done, stats.Total)
		}
	}
	return
}

// NopListener ignores all notifications.
type NopListener struct{}

// WordParsed is part of interface Listener.
func (NopListener) WordParsed(uuid.UUID, []phonology.Syllable, bool) {}

// Progress is part of interface Listener.
func (NopListener) Progress(int, int) {}

// Finished is part of interface Listener.
func (NopListener) Finished(Stats) {}

var _ Listener = NopListener{}
