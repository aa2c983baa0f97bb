package clean

import (
	"math"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/score"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// Conditionally removes every descendant of root named tag that fails the
// content-quality checks below, unless it is a data table, lives inside a
// data table, or sits inside a <code> block. table supplies each node's
// content score for spec §4.10 step 4's "weight + content_score < 0" rule;
// nodes absent from table (never directly scored) are treated as 0. Ported
// from the teacher's cleanConditionally/shouldSkipConditionalCleaning/
// shouldRemoveNode/calculateNodeMetrics/evaluateRemovalCriteria (cleanup.go).
func Conditionally(root *html.Node, tag string, table *score.Table, c *cache.Cache) {
	for _, n := range dom.FindAll(root, tag) {
		if n.Parent == nil {
			continue
		}
		if shouldSkipConditional(n, tag) {
			continue
		}
		if shouldRemoveConditional(n, tag, table, c) {
			dom.RemoveNode(n)
		}
	}
}

func shouldSkipConditional(n *html.Node, tag string) bool {
	if tag == "table" && dom.Attr(n, "data-readability-table-type") == "data" {
		return true
	}
	if dom.HasAncestorTag(n, "table", -1, func(t *html.Node) bool {
		return dom.Attr(t, "data-readability-table-type") == "data"
	}) {
		return true
	}
	return dom.HasAncestorTag(n, "code", -1, nil)
}

func shouldPreserveStructure(n *html.Node, tag string, innerText string) bool {
	switch dom.NodeName(n) {
	case "H1", "H2", "H3":
		return true
	}
	if tag == "ul" || tag == "ol" {
		items := dom.FindAll(n, "li")
		if len(items) >= 3 || len(innerText) > rules.MinParagraphLength {
			return true
		}
	}
	return len(innerText) > rules.MinParagraphLength*2
}

type nodeMetrics struct {
	paragraphCount int
	imgCount       int
	liCount        int
	inputCount     int
	headingDensity float64
	linkDensity    float64
	embedCount     int
	contentLength  int
}

func measure(n *html.Node, c *cache.Cache) nodeMetrics {
	var m nodeMetrics
	m.paragraphCount = len(dom.FindAll(n, "p"))
	m.imgCount = len(dom.FindAll(n, "img"))
	m.liCount = len(dom.FindAll(n, "li"))
	m.inputCount = len(dom.FindAll(n, "input"))

	headingText := 0
	for _, h := range dom.FindAll(n, "h1", "h2", "h3", "h4", "h5", "h6") {
		headingText += len(text.InnerText(c, h, true))
	}
	totalText := len(text.InnerText(c, n, true))
	if totalText > 0 {
		m.headingDensity = float64(headingText) / float64(totalText)
	}
	m.contentLength = totalText
	m.linkDensity = linkDensityOf(c, n)

	m.embedCount = len(dom.FindAll(n, "object", "embed", "iframe"))

	return m
}

func shouldRemoveConditional(n *html.Node, tag string, table *score.Table, c *cache.Cache) bool {
	innerText := text.InnerText(c, n, true)
	if shouldPreserveStructure(n, tag, innerText) {
		return false
	}

	weight := rules.ClassWeight(dom.Attr(n, "class"), dom.Attr(n, "id"))

	contentScore := 0.0
	if cand, ok := table.Get(n); ok {
		contentScore = cand.Score
	}
	if float64(weight)+contentScore < 0 {
		return true
	}

	if text.CountCommas(innerText) >= rules.MinCommaCount {
		return false
	}

	m := measure(n, c)
	isList := tag == "ul" || tag == "ol"

	if isList && m.liCount == m.imgCount && m.imgCount > 0 {
		return false // image gallery
	}

	switch {
	case m.imgCount > m.paragraphCount && !dom.HasAncestorTag(n, "figure", 3, nil):
		return true
	case !isList && m.liCount > m.paragraphCount+100:
		return true
	case float64(m.inputCount) > math.Floor(float64(m.paragraphCount)/3):
		return true
	case !isList && m.headingDensity < rules.HeadingDensityThreshold && m.contentLength < rules.MinCandidateText &&
		(m.imgCount == 0 || m.imgCount > 2) && !dom.HasAncestorTag(n, "figure", 3, nil):
		return true
	case weight < rules.ConditionalWeightThreshold && m.linkDensity > rules.ConditionalLinkDensityThresholdLow:
		return true
	case weight >= rules.ConditionalWeightThreshold && m.linkDensity > rules.ConditionalLinkDensityThresholdHigh:
		return true
	case (m.embedCount == 1 && m.contentLength < rules.MinEmbedContentLength) || m.embedCount > 1:
		return true
	default:
		return false
	}
}
