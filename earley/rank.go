package earley

import (
	"github.com/emirpasic/gods/utils"
)

// Coda is the label of coda nodes, which are counted for ranking.
const Coda = "Coda"

func isCoda(n *TreeNode) bool    { return n.Label == Coda }
func isContext(n *TreeNode) bool { return n.Context }

// rank selects the best of a non-empty list of trees: fewest Coda nodes, then
// most context-gated nodes. On a full tie the first tree wins.
func rank(trees []*TreeNode) int {
	best := 0
	bestCodas := trees[0].Count(isCoda)
	bestContexts := trees[0].Count(isContext)
	for i := 1; i < len(trees); i++ {
		codas := trees[i].Count(isCoda)
		c := utils.IntComparator(codas, bestCodas)
		if c > 0 {
			continue
		}
		contexts := trees[i].Count(isContext)
		if c < 0 || utils.IntComparator(contexts, bestContexts) > 0 {
			best, bestCodas, bestContexts = i, codas, contexts
		}
	}
	return best
}
