// Package prepare runs the destructive pre-processing pass the spec calls
// for (§4.5) before scoring ever sees the document: stripping non-content
// nodes the scorer has no business weighing, coalescing <br> runs into
// paragraphs, and downgrading presentation-only tags to something the rest
// of the pipeline understands. FixLazyImages, which promotes lazy-loaded
// image attributes, also lives here but the engine runs it during
// post-processing of the assembled article, not before scoring.
// Grounded on the teacher's prepDocument/prepArticle/fixLazyImages
// (internal/readability/preparation.go), ported from goquery.Selection
// walks onto direct *html.Node mutation.
package prepare

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// Document runs the whole-document pass: strip <script>/<style>/comments,
// unwrap <noscript> images, coalesce <br> runs, rewrite <font> to <span>.
func Document(doc *html.Node) {
	UnwrapNoscriptImages(doc)
	removeNodes(doc, "script", "style", "noscript")
	removeComments(doc)
	if body := dom.FindFirst(doc, "body"); body != nil {
		coalesceBrRuns(body)
	}
	renameAll(doc, "font", "span")
}

// removeNodes deletes every descendant element matching any of tags.
func removeNodes(doc *html.Node, tags ...string) {
	for _, n := range dom.FindAll(doc, tags...) {
		dom.RemoveNode(n)
	}
}

// removeComments strips every comment node from the tree.
func removeComments(doc *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		c := n.FirstChild
		for c != nil {
			next := c.NextSibling
			if c.Type == html.CommentNode {
				dom.RemoveNode(c)
			} else {
				walk(c)
			}
			c = next
		}
	}
	walk(doc)
}

// renameAll downgrades every element named from to to, preserving
// attributes and children.
func renameAll(doc *html.Node, from, to string) {
	for _, n := range dom.FindAll(doc, from) {
		n.Data = strings.ToLower(to)
		n.DataAtom = 0
	}
}

// coalesceBrRuns replaces runs of two or more consecutive <br> elements
// with a single <p>, absorbing the phrasing-content siblings that follow
// until the next <br><br> or block-level element, matching the teacher's
// replaceBrs.
func coalesceBrRuns(root *html.Node) {
	for _, br := range dom.FindAll(root, "br") {
		if br.Parent == nil {
			continue // already consumed by an earlier run
		}
		next := br.NextSibling
		replaced := false
		for next != nil && dom.NodeName(next) == "BR" {
			replaced = true
			following := next.NextSibling
			dom.RemoveNode(next)
			next = following
		}
		if !replaced {
			continue
		}

		p := dom.CreateElement("p")
		dom.ReplaceNode(br, p)

		cur := p.NextSibling
		for cur != nil {
			if dom.NodeName(cur) == "BR" {
				if after := cur.NextSibling; after != nil && dom.NodeName(after) == "BR" {
					break
				}
			}
			if cur.Type == html.ElementNode && !isPhrasing(cur) {
				break
			}
			following := cur.NextSibling
			dom.AppendChild(p, cur)
			cur = following
		}

		trimTrailingSpace(p)

		if dom.NodeName(p.Parent) == "P" {
			p.Parent.Data = "div"
			p.Parent.DataAtom = 0
		}
	}
}

func trimTrailingSpace(p *html.Node) {
	c := p.LastChild
	for c != nil && c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
		prev := c.PrevSibling
		dom.RemoveNode(c)
		c = prev
	}
}

func isPhrasing(n *html.Node) bool {
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	tag := dom.NodeName(n)
	if rules.Contains(rules.PhrasingElems, tag) {
		return true
	}
	if tag == "A" || tag == "DEL" || tag == "INS" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !isPhrasing(c) {
				return false
			}
		}
		return true
	}
	return false
}
