package metadata

import (
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// ExtractByline implements spec §4.6's DOM byline fallback: walks every
// element looking for rel="author", itemprop mentioning "author", or a
// class/id matching the byline lexicon, accepting the first whose trimmed
// text is 0 < len <= 100 characters. Grounded on the teacher's
// internal/extractors/extract_byline.go, which applies the same three
// signals and length bound.
func ExtractByline(doc *html.Node) string {
	for n := doc; n != nil; n = dom.NextNode(n, false) {
		if dom.NodeName(n) == "" {
			continue
		}
		if !isBylineCandidate(n) {
			continue
		}
		candidate := text.Trim(dom.TextContent(n))
		if candidate != "" && len(candidate) <= 100 {
			return candidate
		}
	}
	return ""
}

func isBylineCandidate(n *html.Node) bool {
	if dom.Attr(n, "rel") == "author" {
		return true
	}
	if itemprop := dom.Attr(n, "itemprop"); itemprop != "" && rules.Byline.MatchString(itemprop) {
		return true
	}
	matchString := dom.Attr(n, "class") + " " + dom.Attr(n, "id")
	return rules.Byline.MatchString(matchString)
}
