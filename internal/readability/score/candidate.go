// Package score implements the content scorer and top-candidate selector
// from spec §4.7-4.8: a base score plus comma/length bonuses propagated up
// to ancestors with depth decay, tag-seeded initial scores, and a
// link-density-adjusted pick among the resulting candidates. Grounded on
// the teacher's scoreNodes/scoreAncestors/buildArticleFromCandidates
// (internal/readability/extraction.go), with the teacher's missing/
// undefined scoring constants replaced by the canonical Readability.js
// defaults (see rules.BaseContentScore and neighbors).
package score

import (
	"math"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// Candidate pairs a scored node with its accumulated content score.
type Candidate struct {
	Node  *html.Node
	Score float64
}

// Table is the node -> Candidate index built while scoring, preserving
// insertion order for deterministic tie-breaking downstream.
type Table struct {
	order []*html.Node
	byNode map[*html.Node]*Candidate
}

func newTable() *Table {
	return &Table{byNode: make(map[*html.Node]*Candidate)}
}

// Get returns the candidate for n, if any.
func (t *Table) Get(n *html.Node) (*Candidate, bool) {
	c, ok := t.byNode[n]
	return c, ok
}

// List returns every candidate in the order first created.
func (t *Table) List() []*Candidate {
	out := make([]*Candidate, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, t.byNode[n])
	}
	return out
}

func (t *Table) addOrBump(n *html.Node, delta, initial float64) *Candidate {
	if c, ok := t.byNode[n]; ok {
		c.Score += delta
		return c
	}
	c := &Candidate{Node: n, Score: initial + delta}
	t.byNode[n] = c
	t.order = append(t.order, n)
	return c
}

// ScoreTree scores every DefaultTagsToScore element under root and
// propagates each one's score up through up to rules.AncestorLevelDepth
// ancestors, seeding a new candidate's score from its tag the first time it
// is seen. flags controls whether class/id weighting is applied.
func ScoreTree(root *html.Node, flags rules.Flags, c *cache.Cache) *Table {
	table := newTable()

	for _, elem := range dom.FindAll(root, elementsToScoreTags...) {
		if elem.Parent == nil {
			continue
		}
		innerText := text.InnerText(c, elem, true)
		if len(innerText) < rules.MinCandidateText {
			continue
		}
		ancestors := dom.Ancestors(elem, rules.AncestorLevelDepth)
		if len(ancestors) == 0 {
			continue
		}

		contentScore := rules.BaseContentScore
		contentScore += float64(text.CountCommas(innerText)) * rules.CommaBonus
		bonus := math.Floor(float64(len(innerText)) / rules.TextLengthDivisor)
		if bonus > rules.MaxLengthBonus {
			bonus = rules.MaxLengthBonus
		}
		contentScore += bonus

		scoreAncestors(table, ancestors, contentScore, flags)
	}

	return table
}

var elementsToScoreTags = rules.DefaultTagsToScore

func scoreAncestors(table *Table, ancestors []*html.Node, contentScore float64, flags rules.Flags) {
	for level, ancestor := range ancestors {
		if dom.NodeName(ancestor) == "" || ancestor.Parent == nil {
			continue
		}

		divider := ancestorDivider(level)
		delta := contentScore / divider

		if _, exists := table.byNode[ancestor]; exists {
			table.addOrBump(ancestor, delta, 0)
			continue
		}

		initial := tagInitialScore(dom.NodeName(ancestor))
		if flags&rules.FlagWeightClasses != 0 {
			initial += float64(rules.ClassWeight(dom.Attr(ancestor, "class"), dom.Attr(ancestor, "id")))
		}
		table.addOrBump(ancestor, delta, initial)
	}
}

func ancestorDivider(level int) float64 {
	switch level {
	case 0:
		return rules.AncestorDividerLevel0
	case 1:
		return rules.AncestorDividerLevel1
	default:
		return float64(level) * rules.AncestorDividerPerStep
	}
}

func tagInitialScore(tag string) float64 {
	switch tag {
	case "DIV":
		return rules.DivInitialScore
	case "PRE", "TD", "BLOCKQUOTE":
		return rules.BlockquoteInitialScore
	case "ADDRESS", "OL", "UL", "DL", "DD", "DT", "LI", "FORM":
		return rules.NegativeListInitialScore
	case "H1", "H2", "H3", "H4", "H5", "H6", "TH":
		return rules.HeadingInitialScore
	default:
		return 0
	}
}
