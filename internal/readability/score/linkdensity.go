package score

import (
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// LinkDensity returns the fraction of n's text that sits inside <a>
// elements, 0 when n has no text at all.
func LinkDensity(c *cache.Cache, n *html.Node) float64 {
	totalLen := len(text.InnerText(c, n, true))
	if totalLen == 0 {
		return 0
	}
	linkLen := 0
	for _, a := range dom.FindAll(n, "a") {
		linkLen += len(text.InnerText(c, a, true))
	}
	return float64(linkLen) / float64(totalLen)
}
