package score

import (
	"sort"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// SelectTop applies `score *= (1 - link_density)` to every scored node in
// table (spec §4.8), then picks the highest resulting final score and walks
// up through parents per spec §4.8's parent-promotion rule: while the
// parent's final score is within 0.75 of the current node's and the parent
// has at least 3 scored children each scoring >= top/2, replace top with the
// parent. The walk stops at <body>. Returns (nil, false) when table is
// empty — callers fall back to the whole body.
func SelectTop(table *Table, c *cache.Cache) (*Candidate, bool) {
	candidates := table.List()
	if len(candidates) == 0 {
		return nil, false
	}

	for _, cand := range candidates {
		cand.Score *= 1 - LinkDensity(c, cand.Node)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	top := candidates[0]
	for {
		if dom.NodeName(top.Node) == "BODY" || top.Node.Parent == nil {
			break
		}
		parent := top.Node.Parent
		parentCandidate, ok := table.Get(parent)
		if !ok {
			break
		}
		if parentCandidate.Score < top.Score*rules.ParentPromotionDelta {
			break
		}
		if countQualifyingChildren(table, parent, top.Score/2) < rules.ParentPromotionMinSiblings {
			break
		}
		top = parentCandidate
	}

	return top, true
}

func countQualifyingChildren(table *Table, parent *html.Node, minScore float64) int {
	count := 0
	for _, child := range dom.Children(parent) {
		if cand, ok := table.Get(child); ok && cand.Score >= minScore {
			count++
		}
	}
	return count
}
