package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// fields is the set of logical metadata fields meta tags can carry.
var fields = []string{"author", "creator", "description", "title", "site_name", "published_time", "modified_time", "image"}

// namespaces lists prefixes in descending precedence order, per spec §4.6.
var namespaces = []string{"dc", "dcterm", "og", "article", "twitter"}

// MetaTags is a namespace:field -> content lookup built from every <meta>
// element under doc, keyed exactly as they appeared (lower-cased,
// whitespace-stripped "namespace:field" or bare "field").
type MetaTags map[string]string

// ScanMetaTags walks every <meta> element and records content under each
// namespace:field / bare-field key its name/property/itemprop attribute
// matches. Multi-valued attributes (space-separated) are matched segment by
// segment, per spec §4.6. Iterates via a goquery.Selection rather than
// dom.FindAll for the CSS-selector convenience spec §3 calls for in the
// metadata layer — goquery.Selection is a typed view over the same
// *html.Node tree, so no conversion boundary is crossed.
func ScanMetaTags(doc *html.Node) MetaTags {
	values := MetaTags{}

	gdoc := goquery.NewDocumentFromNode(doc)
	gdoc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return
		}
		for _, attrName := range []string{"property", "name", "itemprop", "http-equiv"} {
			raw, ok := sel.Attr(attrName)
			if !ok || raw == "" {
				continue
			}
			for _, segment := range strings.Fields(raw) {
				if key, ok := normalizeKey(segment); ok {
					if _, exists := values[key]; !exists {
						values[key] = content
					}
				}
			}
		}
	})
	return values
}

// normalizeKey reduces one name/property segment (e.g. "og:title",
// "dc.creator", "description") to its canonical "namespace:field" or
// bare "field" key, or reports ok=false if it matches neither lexicon.
func normalizeKey(segment string) (string, bool) {
	segment = strings.TrimSpace(segment)
	if m := rules.MetaPropertyPattern.FindStringSubmatch(segment); m != nil {
		return strings.ToLower(m[1]) + ":" + strings.ToLower(m[2]), true
	}
	if m := rules.MetaNamePattern.FindStringSubmatch(segment); m != nil {
		ns := strings.ToLower(m[1])
		field := strings.ToLower(m[2])
		if ns == "" {
			return field, true
		}
		return ns + ":" + field, true
	}
	return "", false
}

// Resolve returns the highest-precedence content available for field,
// trying dc > dcterm > og > article > twitter > bare-name in order.
func (m MetaTags) Resolve(field string) string {
	for _, ns := range namespaces {
		if v, ok := m[ns+":"+field]; ok && v != "" {
			return v
		}
	}
	if v, ok := m[field]; ok {
		return v
	}
	return ""
}
