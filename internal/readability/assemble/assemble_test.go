package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/score"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestEndsWithSentenceStop(t *testing.T) {
	assert.True(t, endsWithSentenceStop("a sentence."))
	assert.True(t, endsWithSentenceStop("a sentence.  \n"))
	assert.True(t, endsWithSentenceStop("中文句子。"))
	assert.False(t, endsWithSentenceStop("no terminal punctuation"))
	assert.False(t, endsWithSentenceStop(""))
}

func TestAppendIfGoodParagraphLongLowDensity(t *testing.T) {
	doc := parse(t, `<html><body><p>`+strings.Repeat("word ", 20)+`</p></body></html>`)
	article := dom.CreateElement("div")
	c := cache.New()
	p := dom.FindFirst(doc, "p")
	appendIfGoodParagraph(article, p, c)
	assert.NotNil(t, dom.FindFirst(article, "p"))
}

func TestAppendIfGoodParagraphShortWithCommaAndStop(t *testing.T) {
	doc := parse(t, `<html><body><p>short, but ends right.</p></body></html>`)
	article := dom.CreateElement("div")
	c := cache.New()
	p := dom.FindFirst(doc, "p")
	appendIfGoodParagraph(article, p, c)
	assert.NotNil(t, dom.FindFirst(article, "p"), "zero-link-density text ending in a stop with a comma must be kept")
}

func TestAppendIfGoodParagraphShortWithoutCommaIsDropped(t *testing.T) {
	doc := parse(t, `<html><body><p>short stop with no comma.</p></body></html>`)
	article := dom.CreateElement("div")
	c := cache.New()
	p := dom.FindFirst(doc, "p")
	appendIfGoodParagraph(article, p, c)
	assert.Nil(t, dom.FindFirst(article, "p"), "no comma means the second heuristic clause must not fire")
}

// siblingTable scores body via the real scorer (so top/sib carry genuine
// Candidate entries) and lets the caller override a specific node's score
// to the exact value a test needs.
func siblingTable(t *testing.T, doc *html.Node, c *cache.Cache, overrides map[*html.Node]float64) *score.Table {
	t.Helper()
	table := score.ScoreTree(dom.FindFirst(doc, "body"), rules.DefaultFlags, c)
	for n, s := range overrides {
		cand, ok := table.Get(n)
		assert.True(t, ok, "node must already carry a scored candidate")
		cand.Score = s
	}
	return table
}

func TestBuildSiblingThresholdRejectsScoreBelowMax10Point2(t *testing.T) {
	doc := parse(t, `<html><body>
<div id="top"><p>`+strings.Repeat("word ", 30)+`</p></div>
<div id="sib"><p>`+strings.Repeat("word ", 30)+`</p></div>
</body></html>`)
	divs := dom.FindAll(doc, "div")
	top, sibling := divs[0], divs[1]
	c := cache.New()

	// top.Score = 5: max(10, 5*0.2) = max(10, 1.0) = 10, so a sibling
	// scoring 8 (< 10) must NOT be admitted on score alone.
	table := siblingTable(t, doc, c, map[*html.Node]float64{sibling: 8})
	article := Build(&score.Candidate{Node: top, Score: 5}, table, c)

	assert.Nil(t, findByID(article, "sib"))
}

func TestBuildSiblingThresholdAdmitsQualifyingSibling(t *testing.T) {
	doc := parse(t, `<html><body>
<div id="top"><p>`+strings.Repeat("word ", 30)+`</p></div>
<div id="sib"><p>`+strings.Repeat("word ", 30)+`</p></div>
</body></html>`)
	divs := dom.FindAll(doc, "div")
	top, sibling := divs[0], divs[1]
	c := cache.New()

	table := siblingTable(t, doc, c, map[*html.Node]float64{sibling: 50})
	article := Build(&score.Candidate{Node: top, Score: 5}, table, c)

	assert.NotNil(t, findByID(article, "sib"), "sibling scoring 50 clears max(10, top*0.2)=10 and must be admitted")
}

func findByID(root *html.Node, id string) *html.Node {
	for _, n := range dom.FindAll(root, "div") {
		if dom.Attr(n, "id") == id {
			return n
		}
	}
	return nil
}
