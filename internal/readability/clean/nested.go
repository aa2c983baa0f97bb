package clean

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
)

// SimplifyNestedElements collapses <div>/<section> wrappers that add no
// structure: empty ones are dropped, and ones whose only child is another
// <div>/<section> are replaced by that child (with the wrapper's own
// attributes merged in). Ported from the teacher's simplifyNestedElements
// (preparation.go).
func SimplifyNestedElements(root *html.Node) {
	node := firstElementChild(root)
	for node != nil {
		tag := dom.NodeName(node)
		if tag != "DIV" && tag != "SECTION" {
			node = dom.NextNode(node, false)
			continue
		}

		if strings.HasPrefix(dom.Attr(node, "id"), "readability") {
			node = dom.NextNode(node, false)
			continue
		}

		if dom.IsElementWithoutContent(node) {
			node = dom.RemoveAndGetNext(node)
			continue
		}

		if dom.HasSingleTagInside(node, "DIV") || dom.HasSingleTagInside(node, "SECTION") {
			child := dom.Children(node)[0]
			for _, attr := range node.Attr {
				if !dom.HasAttr(child, attr.Key) {
					dom.SetAttr(child, attr.Key, attr.Val)
				}
			}
			dom.ReplaceNode(node, child)
			node = child
			continue
		}

		node = dom.NextNode(node, false)
	}
}

func firstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return n
	}
	return dom.NextNode(n, false)
}
