package prepare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestDocumentStripsScriptStyleAndComments(t *testing.T) {
	doc := parse(t, `<html><body><!-- comment --><script>alert(1)</script><style>p{}</style><p>text</p></body></html>`)
	Document(doc)
	assert.Nil(t, dom.FindFirst(doc, "script"))
	assert.Nil(t, dom.FindFirst(doc, "style"))
	assert.Equal(t, "text", dom.TextContent(dom.FindFirst(doc, "p")))
}

func TestDocumentRenamesFontToSpan(t *testing.T) {
	doc := parse(t, `<html><body><font color="red">hi</font></body></html>`)
	Document(doc)
	assert.Nil(t, dom.FindFirst(doc, "font"))
	span := dom.FindFirst(doc, "span")
	assert.NotNil(t, span)
	assert.Equal(t, "red", dom.Attr(span, "color"))
}

func TestDocumentCoalescesBrRuns(t *testing.T) {
	doc := parse(t, `<html><body><div>before<br><br>after text</div></body></html>`)
	Document(doc)
	p := dom.FindFirst(doc, "p")
	assert.NotNil(t, p, "a <br><br> run should be coalesced into a <p>")
	assert.Contains(t, dom.TextContent(p), "after text")
}

func TestRemoveUnlikelyCandidatesDropsMatchingSubtree(t *testing.T) {
	doc := parse(t, `<html><body>
<div class="sidebar"><p>noise</p></div>
<div class="content"><p>real</p></div>
</body></html>`)
	RemoveUnlikelyCandidates(dom.FindFirst(doc, "body"), nil)
	divs := dom.FindAll(doc, "div")
	assert.Len(t, divs, 1)
	assert.Equal(t, "content", dom.Attr(divs[0], "class"))
}

func TestRemoveUnlikelyCandidatesNeverDropsBodyOrAnchors(t *testing.T) {
	doc := parse(t, `<html><body class="sidebar"><a class="sidebar" href="#">link</a></body></html>`)
	RemoveUnlikelyCandidates(dom.FindFirst(doc, "body"), nil)
	assert.NotNil(t, dom.FindFirst(doc, "body"))
	assert.NotNil(t, dom.FindFirst(doc, "a"))
}

func TestRemoveUnlikelyCandidatesHonorsKeepPredicate(t *testing.T) {
	doc := parse(t, `<html><body><div class="sidebar"><p>keep me</p></div></body></html>`)
	kept := dom.FindFirst(doc, "div")
	RemoveUnlikelyCandidates(dom.FindFirst(doc, "body"), func(n *html.Node) bool { return n == kept })
	assert.NotNil(t, dom.FindFirst(doc, "div"))
}

func TestFixLazyImagesPromotesDataSrc(t *testing.T) {
	doc := parse(t, `<html><body><img class="lazy" data-src="real.jpg"></body></html>`)
	FixLazyImages(doc)
	img := dom.FindFirst(doc, "img")
	assert.Equal(t, "real.jpg", dom.Attr(img, "src"))
}

func TestFixLazyImagesLeavesAlreadyLoadedNonLazyImage(t *testing.T) {
	doc := parse(t, `<html><body><img src="already.jpg" data-src="other.jpg"></body></html>`)
	FixLazyImages(doc)
	img := dom.FindFirst(doc, "img")
	assert.Equal(t, "already.jpg", dom.Attr(img, "src"))
}
