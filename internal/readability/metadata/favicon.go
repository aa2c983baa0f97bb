package metadata

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

var faviconRels = []string{"icon", "shortcut icon", "apple-touch-icon", "apple-touch-icon-precomposed"}

// ExtractFavicon picks the best <link rel="icon"|"shortcut icon"|
// "apple-touch-icon"[-precomposed]> href, preferring the variant whose
// sizes="NxN" attribute names the largest square, and resolves it against
// base. Grounded on the rel/sizes heuristic a browser favicon picker uses;
// the teacher carries no favicon extraction at all, so this is a
// supplemented feature restoring original_source/readability/models.py's
// Article.favicon field.
func ExtractFavicon(doc *html.Node, base *url.URL) string {
	best := ""
	bestArea := -1

	for _, link := range dom.FindAll(doc, "link") {
		rel := strings.ToLower(strings.TrimSpace(dom.Attr(link, "rel")))
		if !rules.Contains(faviconRels, rel) {
			continue
		}
		href := dom.Attr(link, "href")
		if href == "" {
			continue
		}
		area := faviconArea(dom.Attr(link, "sizes"))
		if best == "" || area > bestArea {
			best = href
			bestArea = area
		}
	}

	if best == "" {
		return ""
	}
	return rules.ResolveURI(best, base)
}

// faviconArea returns w*h parsed from a sizes="WxH" attribute, or 0 for
// "any"/empty/unparsable values so an explicitly-sized icon always wins.
func faviconArea(sizes string) int {
	m := rules.FaviconSize.FindStringSubmatch(sizes)
	if m == nil {
		return 0
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return w * h
}
