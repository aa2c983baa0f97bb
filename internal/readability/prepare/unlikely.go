package prepare

import (
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/visibility"
)

// RemoveUnlikelyCandidates walks root and drops every element that trips
// visibility.IsUnlikelyCandidate, except <body>/<html>, every <a>, and
// anything a non-nil keep predicate vetoes (the engine passes nil). Only
// active while
// rules.FlagStripUnlikelys is set — the caller decides that.
func RemoveUnlikelyCandidates(root *html.Node, keep func(*html.Node) bool) {
	n := root.FirstChild
	for n != nil {
		next := n.NextSibling
		if n.Type == html.ElementNode {
			removeUnlikelySubtree(n, keep)
		}
		n = next
	}
}

func removeUnlikelySubtree(n *html.Node, keep func(*html.Node) bool) {
	if shouldStripUnlikely(n, keep) {
		dom.RemoveNode(n)
		return
	}
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			removeUnlikelySubtree(c, keep)
		}
		c = next
	}
}

func shouldStripUnlikely(n *html.Node, keep func(*html.Node) bool) bool {
	tag := dom.NodeName(n)
	if tag == "BODY" || tag == "HTML" || tag == "A" {
		return false
	}
	if keep != nil && keep(n) {
		return false
	}
	return visibility.IsUnlikelyCandidate(n)
}
