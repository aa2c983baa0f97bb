package metadata

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// titleXPaths ranks candidate title sources by how reliable they usually
// are, replacing the teacher's ad hoc xpathToCSS shim (internal/extractors
// /extract_element.go in the teacher) with real XPath evaluation against
// the parsed *html.Node tree via antchfx/htmlquery/xpath.
var titleXPaths = []string{
	"//title",
	"//meta[translate(@property,'OG','og')='og:title']/@content",
	"//h1",
}

// candidateTitle returns the first non-blank match among titleXPaths.
func candidateTitle(doc *html.Node) string {
	for _, expr := range titleXPaths {
		if node := htmlquery.FindOne(doc, expr); node != nil {
			if v := strings.TrimSpace(htmlquery.InnerText(node)); v != "" {
				return v
			}
		}
	}
	return ""
}

// ExtractTitle implements spec §4.6 fallbacks 3: the document <title>,
// cleaned against separators and hierarchy markers, falling back to a lone
// <h1> when the title is missing, "null", or out of the plausible length
// range.
func ExtractTitle(doc *html.Node) string {
	titleNode := htmlquery.FindOne(doc, "//title")
	docTitle := ""
	if titleNode != nil {
		docTitle = strings.TrimSpace(htmlquery.InnerText(titleNode))
	}
	origTitle := docTitle

	switch {
	case rules.TitleSeparator.MatchString(docTitle):
		docTitle = rules.TitleRemoveFinalPart.ReplaceAllString(docTitle, "$1")
		if text.WordCount(docTitle) < 3 {
			docTitle = rules.TitleRemoveFirstPart.ReplaceAllString(origTitle, "$1")
		}
	case strings.Contains(docTitle, ": "):
		docTitle = cleanColonTitle(doc, docTitle, origTitle)
	case docTitle == "" || docTitle == "null" || len(docTitle) > 150 || len(docTitle) < 15:
		if h1s := htmlquery.Find(doc, "//h1"); len(h1s) == 1 {
			docTitle = strings.TrimSpace(htmlquery.InnerText(h1s[0]))
		}
	}

	docTitle = text.Trim(docTitle)

	if docTitle == "" {
		docTitle = candidateTitle(doc)
	}

	// If the clean-up left something implausibly short, and it wasn't
	// already short to begin with, fall back to the original title — the
	// >=15 char floor from spec §4.6, relaxed when the original itself
	// was already under it.
	if len(docTitle) < 15 && len(origTitle) >= 15 {
		docTitle = origTitle
	}

	return text.Trim(docTitle)
}

// cleanColonTitle handles the "Site: Headline" shape: prefer whichever side
// of the last colon isn't duplicated verbatim by an <h1>/<h2>.
func cleanColonTitle(doc *html.Node, docTitle, origTitle string) string {
	for _, tag := range []string{"h1", "h2"} {
		for _, h := range dom.FindAll(doc, tag) {
			if strings.TrimSpace(dom.TextContent(h)) == docTitle {
				return docTitle
			}
		}
	}

	colonIndex := strings.LastIndex(origTitle, ":")
	if colonIndex == -1 {
		return docTitle
	}
	after := strings.TrimSpace(origTitle[colonIndex+1:])
	if text.WordCount(after) < 3 {
		before := strings.TrimSpace(origTitle[:colonIndex])
		if text.WordCount(before) > 5 {
			return origTitle
		}
		return before
	}
	return after
}
