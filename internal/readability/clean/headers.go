package clean

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// RemoveDuplicateHeaders deletes every <h1>-<h2> under root whose trimmed
// text matches title, plus every second-and-later occurrence of any other
// repeated heading text — ported from the teacher's
// cleanHeaders/findTitleHeaders/processDuplicateHeaders (cleanup.go).
func RemoveDuplicateHeaders(root *html.Node, title string) {
	title = text.Trim(title)
	seen := map[string]bool{}

	if title != "" {
		for _, h := range dom.FindAll(root, "h1", "h2") {
			if text.Trim(dom.TextContent(h)) == title {
				dom.RemoveNode(h)
			}
		}
	}

	for _, h := range dom.FindAll(root, "h1", "h2", "h3", "h4", "h5", "h6") {
		if h.Parent == nil {
			continue // already removed above
		}
		key := strings.ToLower(text.Trim(dom.TextContent(h)))
		if key == "" {
			continue
		}
		if seen[key] {
			dom.RemoveNode(h)
			continue
		}
		seen[key] = true
	}
}
