package earley

import (
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/syllabo"
)

// backpointer points to a completed item in the chart.
type backpointer struct {
	Pos   int
	Index int
}

// item is an Earley item. Fields are exported for structhash.
type item struct {
	LHS     string
	RHS     []string
	Dot     int
	Start   int
	End     int
	Context string
	Back    []backpointer
}

func (it *item) complete() bool {
	return it.Dot >= len(it.RHS)
}

// peek returns the symbol after the dot, or "" for completed items.
func (it *item) peek() string {
	if it.complete() {
		return ""
	}
	return it.RHS[it.Dot]
}

// admits is true if the item may advance over a symbol which is followed by
// token next. The context is checked only for the advance completing the item,
// i.e. against the token following the span of the whole rule.
func (it *item) admits(next string) bool {
	return it.Context == "" || it.Dot+1 < len(it.RHS) || it.Context == next
}

func (it *item) span() syllabo.Span {
	return syllabo.Span{it.Start, it.End}
}

func (it *item) String() string {
	var b strings.Builder
	b.WriteString(it.LHS)
	b.WriteString(" ->")
	for i, sym := range it.RHS {
		if i == it.Dot {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteString(sym)
	}
	if it.complete() {
		b.WriteString(" •")
	}
	if it.Context != "" {
		b.WriteString(" | ")
		b.WriteString(it.Context)
	}
	b.WriteByte(' ')
	b.WriteString(it.span().String())
	for _, bp := range it.Back {
		b.WriteString(" [" + strconv.Itoa(bp.Pos) + "," + strconv.Itoa(bp.Index) + "]")
	}
	return b.String()
}

// key is an exact structural dump of an item, used for duplicate detection.
func (it *item) key() string {
	return string(structhash.Dump(*it, 1))
}

// chart is an arena of Earley items, one set per input position.
type chart struct {
	sets [][]item
	keys []map[string]struct{}
}

// add appends an item at position pos, unless an equal item is already
// present there. Returns true if the item has been added.
func (c *chart) add(it item, pos int) bool {
	for len(c.sets) <= pos {
		c.sets = append(c.sets, nil)
		c.keys = append(c.keys, make(map[string]struct{}))
	}
	k := it.key()
	if _, dup := c.keys[pos][k]; dup {
		return false
	}
	c.keys[pos][k] = struct{}{}
	c.sets[pos] = append(c.sets[pos], it)
	return true
}

// at returns the item at (pos, index), or nil for a dangling reference.
func (c *chart) at(pos, index int) *item {
	if pos < 0 || pos >= len(c.sets) || index < 0 || index >= len(c.sets[pos]) {
		return nil
	}
	return &c.sets[pos][index]
}

func (c *chart) size(pos int) int {
	if pos >= len(c.sets) {
		return 0
	}
	return len(c.sets[pos])
}
