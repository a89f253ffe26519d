package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

func dumpChart(c *chart, pos int) {
	if tracer().GetTraceLevel() != tracing.LevelDebug || pos >= len(c.sets) {
		return
	}
	tracer().Debugf("--- Chart %04d ------------------------------------", pos)
	for n := range c.sets[pos] {
		tracer().Debugf("[%2d] %s", n, c.sets[pos][n].String())
	}
}
