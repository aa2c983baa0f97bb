// Package clean implements the post-processing pass of spec §4.10: strip
// containers with no editorial value, flatten presentational wrappers,
// rewrite relative URIs, and classify tables as data vs. layout. Grounded
// on the teacher's cleanup.go (clean/cleanConditionally/cleanStyles/
// cleanClasses/markDataTables/cleanHeaders) and preparation.go
// (simplifyNestedElements/postProcessContent), ported onto *html.Node. The
// teacher carries accidental duplicate definitions of several of these
// functions across readability.go and cleanup.go; this package keeps one
// definition per concern instead of reproducing the duplication.
package clean

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/score"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// RemoveTag deletes every descendant of root named tag, except an
// <object>/<embed>/<iframe> whose attributes or (for object) inner HTML
// match allowedVideo.
func RemoveTag(root *html.Node, tag string, allowedVideo *regexp.Regexp) {
	isEmbed := tag == "object" || tag == "embed" || tag == "iframe"
	for _, n := range dom.FindAll(root, tag) {
		if isEmbed && allowedVideo != nil && isAllowedVideo(n, tag, allowedVideo) {
			continue
		}
		dom.RemoveNode(n)
	}
}

func isAllowedVideo(n *html.Node, tag string, allowedVideo *regexp.Regexp) bool {
	for _, a := range n.Attr {
		if allowedVideo.MatchString(a.Val) {
			return true
		}
	}
	if tag == "object" && allowedVideo.MatchString(dom.OuterHTML(n)) {
		return true
	}
	return false
}

// RemoveShareElements drops every descendant element of root (root itself
// excluded) whose class/id matches rules.ShareElements and whose text is
// under charThreshold — ported from prepArticle's cleanMatchedNodes pass.
func RemoveShareElements(root *html.Node, c *cache.Cache, charThreshold int) {
	for _, child := range dom.Children(root) {
		removeShareMatches(child, c, charThreshold)
	}
}

func removeShareMatches(n *html.Node, c *cache.Cache, charThreshold int) {
	matchString := dom.Attr(n, "class") + " " + dom.Attr(n, "id")
	if rules.ShareElements.MatchString(matchString) && len(text.InnerText(c, n, true)) < charThreshold {
		dom.RemoveNode(n)
		return
	}
	for _, child := range dom.Children(n) {
		removeShareMatches(child, c, charThreshold)
	}
}

// RemoveEmptyParagraphs deletes every <p> under root with no embedded
// media and no text.
func RemoveEmptyParagraphs(root *html.Node) {
	for _, p := range dom.FindAll(root, "p") {
		embeds := len(dom.FindAll(p, "img", "embed", "object", "iframe"))
		if embeds == 0 && strings.TrimSpace(dom.TextContent(p)) == "" {
			dom.RemoveNode(p)
		}
	}
}

// RemoveBrsBeforeParagraphs deletes a <br> that is immediately followed by
// a <p>, per spec §4.10.
func RemoveBrsBeforeParagraphs(root *html.Node) {
	for _, br := range dom.FindAll(root, "br") {
		next := nextElementSibling(br)
		if next != nil && dom.NodeName(next) == "P" {
			dom.RemoveNode(br)
		}
	}
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// UnwrapSingleCellTables replaces a <table> whose body has exactly one row
// with exactly one cell by that cell's content, wrapped as a <p> if every
// child is phrasing content, else a <div>.
func UnwrapSingleCellTables(root *html.Node) {
	for _, table := range dom.FindAll(root, "table") {
		tbody := table
		if b := dom.FindFirst(table, "tbody"); b != nil {
			tbody = b
		}
		rows := dom.FindAll(tbody, "tr")
		if len(rows) != 1 {
			continue
		}
		cells := dom.FindAll(rows[0], "td")
		if len(cells) != 1 {
			continue
		}
		cell := cells[0]

		wrapperTag := "div"
		if allPhrasing(cell) {
			wrapperTag = "p"
		}
		wrapper := dom.CreateElement(wrapperTag)
		for c := cell.FirstChild; c != nil; {
			next := c.NextSibling
			dom.AppendChild(wrapper, c)
			c = next
		}
		dom.ReplaceNode(table, wrapper)
	}
}

func allPhrasing(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			continue
		}
		if c.Type != html.ElementNode || !rules.Contains(rules.PhrasingElems, dom.NodeName(c)) {
			return false
		}
	}
	return true
}

// RemoveVideoHosts drops <iframe>s whose src doesn't match the known video
// host lexicon (rules.Videos) — these are assumed to be ad/tracking frames.
func RemoveVideoHosts(root *html.Node) {
	for _, iframe := range dom.FindAll(root, "iframe") {
		src := dom.Attr(iframe, "src")
		if src != "" && !rules.Videos.MatchString(src) {
			dom.RemoveNode(iframe)
		}
	}
}

// linkDensityOf is a tiny re-export so other files in this package can call
// score.LinkDensity without importing it redundantly in every file.
func linkDensityOf(c *cache.Cache, n *html.Node) float64 {
	return score.LinkDensity(c, n)
}
