package prepare

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

var imageURLAttrs = []string{"src", "srcset", "data-src", "data-srcset"}

// UnwrapNoscriptImages drops <img> elements with no plausible image
// attribute, then promotes a <noscript> element's own <img> onto its
// immediately preceding sibling image whenever the noscript contains
// nothing but that single image — the standard no-JS picture fallback
// pattern. Ported from the teacher's unwrapNoscriptImages
// (readability.go), which runs the same two passes over goquery
// selections; here the noscript's raw text content is re-parsed as an
// HTML fragment since golang.org/x/net/html treats <noscript> as raw text.
func UnwrapNoscriptImages(doc *html.Node) {
	for _, img := range dom.FindAll(doc, "img") {
		if !hasImageAttr(img) {
			dom.RemoveNode(img)
		}
	}

	for _, noscript := range dom.FindAll(doc, "noscript") {
		fragment := parseNoscriptFragment(noscript)
		newImg := singleImageOf(fragment)
		if newImg == nil {
			continue
		}

		prev := prevElementSibling(noscript)
		if prev == nil {
			continue
		}
		var prevImg *html.Node
		if dom.NodeName(prev) == "IMG" {
			prevImg = prev
		} else if images := dom.FindAll(prev, "img"); len(images) > 0 && isSingleImageContainer(prev) {
			prevImg = images[0]
		}
		if prevImg == nil {
			continue
		}

		for _, attr := range prevImg.Attr {
			if attr.Val == "" {
				continue
			}
			if attr.Key == "src" || attr.Key == "srcset" || rules.ImageExtension.MatchString(attr.Val) {
				name := attr.Key
				if existing := dom.Attr(newImg, name); existing == attr.Val {
					continue
				}
				if dom.HasAttr(newImg, name) {
					name = "data-old-" + name
				}
				dom.SetAttr(newImg, name, attr.Val)
			}
		}

		dom.ReplaceNode(prev, dom.CloneTree(newImg))
	}
}

func hasImageAttr(img *html.Node) bool {
	for _, a := range imageURLAttrs {
		if dom.Attr(img, a) != "" {
			return true
		}
	}
	for _, a := range img.Attr {
		if rules.ImageExtension.MatchString(a.Val) {
			return true
		}
	}
	return false
}

// parseNoscriptFragment re-parses a <noscript>'s literal text content
// (net/html's raw-text treatment of the tag) as an HTML fragment.
func parseNoscriptFragment(noscript *html.Node) *html.Node {
	var raw strings.Builder
	for c := noscript.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			raw.WriteString(c.Data)
		}
	}
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(raw.String()), context)
	if err != nil {
		return nil
	}
	root := dom.CreateElement("div")
	for _, n := range nodes {
		dom.AppendChild(root, n)
	}
	return root
}

// isSingleImageContainer reports whether n is an <img>, or has exactly one
// element child that is itself a single-image container.
func isSingleImageContainer(n *html.Node) bool {
	if n == nil {
		return false
	}
	if dom.NodeName(n) == "IMG" {
		return true
	}
	children := dom.Children(n)
	if len(children) != 1 {
		return false
	}
	return isSingleImageContainer(children[0])
}

// singleImageOf returns the lone <img> if root is a single-image container,
// else nil.
func singleImageOf(root *html.Node) *html.Node {
	if root == nil {
		return nil
	}
	if !isSingleImageContainer(root) {
		return nil
	}
	return dom.FindFirst(root, "img")
}

func prevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}
