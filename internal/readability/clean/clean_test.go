package clean

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

func TestStylesStripsPresentationalAttrs(t *testing.T) {
	doc := parse(t, `<html><body><p align="center" style="color:red">text</p></body></html>`)
	Styles(doc)
	p := dom.FindFirst(doc, "p")
	assert.False(t, dom.HasAttr(p, "align"))
	assert.False(t, dom.HasAttr(p, "style"))
}

func TestMarkDataTablesDistinguishesDataFromLayout(t *testing.T) {
	doc := parse(t, `<html><body>
<table summary="quarterly results"><tr><td>1</td></tr></table>
<table><tr><td>layout cell</td></tr></table>
</body></html>`)
	MarkDataTables(doc)
	tables := dom.FindAll(doc, "table")
	assert.Equal(t, "data", dom.Attr(tables[0], "data-readability-table-type"))
	assert.Equal(t, "presentation", dom.Attr(tables[1], "data-readability-table-type"))
}

func TestRemoveEmptyParagraphs(t *testing.T) {
	doc := parse(t, `<html><body><p>   </p><p>real content here</p></body></html>`)
	RemoveEmptyParagraphs(doc)
	ps := dom.FindAll(doc, "p")
	assert.Len(t, ps, 1)
	assert.Equal(t, "real content here", dom.TextContent(ps[0]))
}

func TestConditionallyRemovesNegativeWeightNode(t *testing.T) {
	doc := parse(t, `<html><body><div class="sidebar">short blurb</div></body></html>`)
	c := cache.New()
	table := score.ScoreTree(doc, rules.DefaultFlags, c)
	Conditionally(doc, "div", table, c)
	assert.Nil(t, dom.FindFirst(doc, "div"))
}

func TestConditionallyRemovesImageHeavyNode(t *testing.T) {
	doc := parse(t, `<html><body><div>
<img src="a.jpg"><img src="b.jpg"><img src="c.jpg">
<p>one line</p>
</div></body></html>`)
	c := cache.New()
	table := score.ScoreTree(doc, rules.DefaultFlags, c)
	Conditionally(doc, "div", table, c)
	assert.Nil(t, dom.FindFirst(doc, "div"))
}

func TestConditionallyKeepsCommaRichParagraphNode(t *testing.T) {
	doc := parse(t, `<html><body><div>`+
		strings.Repeat("one, two, three, four, five, six, seven, eight, nine, ten, ", 3)+
		`</div></body></html>`)
	c := cache.New()
	table := score.ScoreTree(doc, rules.DefaultFlags, c)
	Conditionally(doc, "div", table, c)
	assert.NotNil(t, dom.FindFirst(doc, "div"))
}
