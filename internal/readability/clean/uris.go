package clean

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// FixRelativeURIs resolves href on <a> and src/poster/srcset on <img>,
// <picture>, <figure>, <video>, <audio> and <source> under root against
// base; these attributes on other elements are not rewritten. It also
// converts javascript: links to plain text (or a
// <span>, if the link has element children), since they are dead once
// scripts are stripped. Ported from the teacher's fixRelativeUris
// (preparation.go).
func FixRelativeURIs(root *html.Node, base *url.URL) {
	for _, link := range dom.FindAll(root, "a") {
		href := dom.Attr(link, "href")
		if href == "" {
			continue
		}
		if strings.HasPrefix(href, "javascript:") {
			replaceJavascriptLink(link)
			continue
		}
		dom.SetAttr(link, "href", rules.ResolveURI(href, base))
	}

	for _, media := range dom.FindAll(root, "img", "picture", "figure", "video", "audio", "source") {
		if src := dom.Attr(media, "src"); src != "" {
			dom.SetAttr(media, "src", rules.ResolveURI(src, base))
		}
		if poster := dom.Attr(media, "poster"); poster != "" {
			dom.SetAttr(media, "poster", rules.ResolveURI(poster, base))
		}
		if srcset := dom.Attr(media, "srcset"); srcset != "" {
			dom.SetAttr(media, "srcset", resolveSrcset(srcset, base))
		}
	}
}

func replaceJavascriptLink(link *html.Node) {
	if dom.Children(link) == nil {
		dom.ReplaceNode(link, &html.Node{Type: html.TextNode, Data: dom.TextContent(link)})
		return
	}
	span := dom.CreateElement("span")
	for c := link.FirstChild; c != nil; {
		next := c.NextSibling
		dom.AppendChild(span, c)
		c = next
	}
	dom.ReplaceNode(link, span)
}

func resolveSrcset(srcset string, base *url.URL) string {
	return rules.SrcsetURL.ReplaceAllStringFunc(srcset, func(match string) string {
		parts := rules.SrcsetURL.FindStringSubmatch(match)
		if len(parts) < 4 {
			return match
		}
		return rules.ResolveURI(parts[1], base) + parts[2] + parts[3]
	})
}
