package clean

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// Styles strips every purely presentational attribute (rules.
// PresentationalAttributes) from root and its descendants. On rules.
// DeprecatedSizeAttributeElems, width/height are kept when numeric and
// removed otherwise. <svg> subtrees are left untouched since
// their presentation attributes carry real meaning.
func Styles(root *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type != html.ElementNode {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			return
		}
		if dom.NodeName(n) == "SVG" {
			return
		}
		for _, attr := range rules.PresentationalAttributes {
			dom.RemoveAttr(n, attr)
		}
		if rules.Contains(rules.DeprecatedSizeAttributeElems, dom.NodeName(n)) {
			for _, attr := range []string{"width", "height"} {
				if _, err := strconv.ParseFloat(strings.TrimSpace(dom.Attr(n, attr)), 64); err != nil {
					dom.RemoveAttr(n, attr)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

// Classes strips every class attribute under root down to whatever
// entries also appear in keep (typically rules.ClassesToPreserve).
func Classes(root *html.Node, keep []string) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			class := dom.Attr(n, "class")
			if class != "" {
				var kept []string
				for _, cls := range strings.Fields(class) {
					if rules.Contains(keep, cls) {
						kept = append(kept, cls)
					}
				}
				if len(kept) > 0 {
					dom.SetAttr(n, "class", strings.Join(kept, " "))
				} else {
					dom.RemoveAttr(n, "class")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
