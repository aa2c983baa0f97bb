package visibility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestVisibleRejectsDisplayNone(t *testing.T) {
	doc := parse(t, `<html><body><div style="display: none;">x</div></body></html>`)
	c := cache.New()
	assert.False(t, Visible(c, dom.FindFirst(doc, "div")))
}

func TestVisibleRejectsVisibilityHidden(t *testing.T) {
	doc := parse(t, `<html><body><div style="visibility:hidden">x</div></body></html>`)
	c := cache.New()
	assert.False(t, Visible(c, dom.FindFirst(doc, "div")))
}

func TestVisibleRejectsHiddenAttribute(t *testing.T) {
	doc := parse(t, `<html><body><div hidden>x</div></body></html>`)
	c := cache.New()
	assert.False(t, Visible(c, dom.FindFirst(doc, "div")))
}

func TestVisibleAriaHiddenFallbackImageException(t *testing.T) {
	doc := parse(t, `<html><body>
<div aria-hidden="true">x</div>
<div aria-hidden="true" class="fallback-image">x</div>
</body></html>`)
	c := cache.New()
	divs := dom.FindAll(doc, "div")
	assert.False(t, Visible(c, divs[0]))
	assert.True(t, Visible(c, divs[1]))
}

func TestVisibleResultIsCached(t *testing.T) {
	doc := parse(t, `<html><body><div>plain</div></body></html>`)
	c := cache.New()
	div := dom.FindFirst(doc, "div")
	assert.True(t, Visible(c, div))
	dom.SetAttr(div, "hidden", "")
	assert.True(t, Visible(c, div), "cached result must not recompute after mutation")
}

func TestIsUnlikelyCandidate(t *testing.T) {
	doc := parse(t, `<html><body>
<div class="sidebar-widget">a</div>
<div class="sidebar-widget article-body">b</div>
<div role="navigation">c</div>
<div class="content">d</div>
</body></html>`)
	divs := dom.FindAll(doc, "div")
	assert.True(t, IsUnlikelyCandidate(divs[0]))
	assert.False(t, IsUnlikelyCandidate(divs[1]), "maybe-candidate regex hit should override")
	assert.True(t, IsUnlikelyCandidate(divs[2]))
	assert.False(t, IsUnlikelyCandidate(divs[3]))
}
