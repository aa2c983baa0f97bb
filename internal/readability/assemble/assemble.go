// Package assemble builds the final article container from the top
// scoring candidate and its qualifying siblings, per spec §4.9. Grounded
// on the teacher's buildArticleFromCandidates/addSiblings/
// addParagraphIfGoodContent (internal/readability/extraction.go).
package assemble

import (
	"math"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/score"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// Build wraps top in a fresh "div#readability-content" container and
// copies in any siblings of top whose own candidate score, or paragraph
// heuristic, clears the sibling threshold max(10, top.Score*0.2).
func Build(top *score.Candidate, table *score.Table, c *cache.Cache) *html.Node {
	article := dom.CreateElement("div")
	dom.SetAttr(article, "id", "readability-content")
	dom.AppendChild(article, dom.CloneTree(top.Node))

	if top.Node.Parent == nil {
		return article
	}

	threshold := math.Max(rules.SiblingScoreFallback, top.Score*rules.SiblingScoreFraction)

	topClass := dom.Attr(top.Node, "class")

	for _, sibling := range dom.Children(top.Node.Parent) {
		if sibling == top.Node {
			continue
		}

		siblingScore := 0.0
		if cand, ok := table.Get(sibling); ok {
			siblingScore = cand.Score
		}

		if topClass != "" && dom.Attr(sibling, "class") == topClass {
			siblingScore += top.Score * rules.SameClassSiblingBonus
		}

		if siblingScore >= threshold {
			dom.AppendChild(article, dom.CloneTree(sibling))
			continue
		}

		if dom.NodeName(sibling) == "P" {
			appendIfGoodParagraph(article, sibling, c)
		}
	}

	return article
}

func appendIfGoodParagraph(article *html.Node, p *html.Node, c *cache.Cache) {
	linkDensity := score.LinkDensity(c, p)
	content := text.InnerText(c, p, true)
	length := len(content)

	switch {
	case length >= rules.MinParagraphLength && linkDensity < rules.ParagraphLinkDensityThreshold:
		dom.AppendChild(article, dom.CloneTree(p))
	case linkDensity == 0 && endsWithSentenceStop(content) && text.CountCommas(content) >= 1:
		dom.AppendChild(article, dom.CloneTree(p))
	}
}

// endsWithSentenceStop reports whether the last non-space rune of content is
// an ASCII or ideographic full stop, per spec §4.9's second sibling-
// paragraph heuristic.
func endsWithSentenceStop(content string) bool {
	trimmed := strings.TrimRight(content, " \t\r\n")
	if trimmed == "" {
		return false
	}
	last := trimmed[len(trimmed)-1:]
	return last == "." || strings.HasSuffix(trimmed, "。")
}
