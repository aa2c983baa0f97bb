package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestNodeNameUppercasesTag(t *testing.T) {
	doc := parse(t, `<html><body><div></div></body></html>`)
	div := FindFirst(doc, "div")
	assert.Equal(t, "DIV", NodeName(div))
	assert.Equal(t, "", NodeName(nil))
}

func TestAttrAndSetAttr(t *testing.T) {
	doc := parse(t, `<html><body><p class="a">x</p></body></html>`)
	p := FindFirst(doc, "p")
	assert.Equal(t, "a", Attr(p, "class"))
	SetAttr(p, "class", "b")
	assert.Equal(t, "b", Attr(p, "class"))
	SetAttr(p, "id", "new")
	assert.Equal(t, "new", Attr(p, "id"))
	RemoveAttr(p, "class")
	assert.False(t, HasAttr(p, "class"))
}

func TestCloneTreeIsDeepAndDetached(t *testing.T) {
	doc := parse(t, `<html><body><div><p>hi</p></div></body></html>`)
	div := FindFirst(doc, "div")
	clone := CloneTree(div)
	assert.Nil(t, clone.Parent)
	assert.Equal(t, "hi", TextContent(FindFirst(clone, "p")))

	RemoveNode(FindFirst(clone, "p"))
	assert.NotNil(t, FindFirst(div, "p"), "mutating the clone must not affect the original")
}

func TestAppendChildDetachesFromPreviousParent(t *testing.T) {
	doc := parse(t, `<html><body><div id="a"></div><div id="b"></div></body></html>`)
	divs := FindAll(doc, "div")
	a, b := divs[0], divs[1]
	p := CreateElement("p")
	AppendChild(a, p)
	assert.Equal(t, a, p.Parent)
	AppendChild(b, p)
	assert.Equal(t, b, p.Parent)
	assert.Nil(t, a.FirstChild)
}

func TestReplaceNodePreservesPosition(t *testing.T) {
	doc := parse(t, `<html><body><p id="1">one</p><p id="2">two</p></body></html>`)
	first := FindAll(doc, "p")[0]
	replacement := CreateElement("div")
	ReplaceNode(first, replacement)
	children := Children(FindFirst(doc, "body"))
	assert.Equal(t, "DIV", NodeName(children[0]))
	assert.Equal(t, "P", NodeName(children[1]))
}

func TestHasAncestorTagRespectsMaxDepth(t *testing.T) {
	doc := parse(t, `<html><body><article><section><p>x</p></section></article></body></html>`)
	p := FindFirst(doc, "p")
	assert.True(t, HasAncestorTag(p, "article", -1, nil))
	assert.False(t, HasAncestorTag(p, "article", 1, nil))
}

func TestIsElementWithoutContent(t *testing.T) {
	doc := parse(t, `<html><body><div><br><hr></div><div>text</div></body></html>`)
	divs := FindAll(doc, "div")
	assert.True(t, IsElementWithoutContent(divs[0]))
	assert.False(t, IsElementWithoutContent(divs[1]))
}

func TestHasSingleTagInside(t *testing.T) {
	doc := parse(t, `<html><body><div><p>x</p></div><div>stray<p>x</p></div></body></html>`)
	divs := FindAll(doc, "div")
	assert.True(t, HasSingleTagInside(divs[0], "p"))
	assert.False(t, HasSingleTagInside(divs[1], "p"))
}

func TestFindAllMatchesMultipleTags(t *testing.T) {
	doc := parse(t, `<html><body><h1>a</h1><h2>b</h2><p>c</p></body></html>`)
	found := FindAll(doc, "h1", "h2")
	assert.Len(t, found, 2)
}
