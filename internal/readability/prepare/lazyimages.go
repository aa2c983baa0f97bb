package prepare

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// FixLazyImages promotes lazy-load placeholder attributes to real src/
// srcset on every <img>/<picture>/<figure> under root, per spec §4.5 and
// rules.LazyImageAttrs. Ported from the teacher's fixLazyImages
// (internal/readability/preparation.go): skip already-loaded non-lazy
// images, drop tiny base64 placeholders once a real image attribute is
// found, and promote any other attribute whose value looks like an image
// URL (srcset-shaped or a bare file path).
func FixLazyImages(root *html.Node) {
	for _, elem := range dom.FindAll(root, "img", "picture", "figure") {
		src := dom.Attr(elem, "src")
		hasSrcset := dom.HasAttr(elem, "srcset")
		class := strings.ToLower(dom.Attr(elem, "class"))

		if (src != "" || hasSrcset) && !strings.Contains(class, "lazy") {
			continue
		}

		if src != "" {
			if m := rules.B64DataURL.FindStringSubmatch(src); m != nil {
				if m[1] != "image/svg+xml" && isLikelyPlaceholder(elem, src) {
					dom.RemoveAttr(elem, "src")
				}
			}
		}

		promoteLazyAttrs(elem)
	}
}

// isLikelyPlaceholder reports whether elem carries another attribute with
// an image-shaped value and src's base64 payload is small enough to be a
// blur-up placeholder rather than real content.
func isLikelyPlaceholder(elem *html.Node, src string) bool {
	hasImageAttr := false
	for _, a := range elem.Attr {
		if a.Key == "src" {
			continue
		}
		if rules.ImageExtension.MatchString(a.Val) {
			hasImageAttr = true
			break
		}
	}
	if !hasImageAttr {
		return false
	}
	idx := strings.Index(src, "base64,")
	if idx < 0 {
		return false
	}
	payload := src[idx+len("base64,"):]
	return len(payload) < 133
}

// promoteLazyAttrs copies rules.LazyImageAttrs values onto src/srcset, and
// scans every other attribute for an image-shaped value to promote.
func promoteLazyAttrs(elem *html.Node) {
	for _, attr := range rules.LazyImageAttrs {
		val := dom.Attr(elem, attr)
		if val == "" {
			continue
		}
		target := "src"
		if strings.Contains(attr, "srcset") {
			target = "srcset"
		}
		if dom.Attr(elem, target) == "" {
			dom.SetAttr(elem, target, val)
		}
	}

	for _, a := range append([]html.Attribute(nil), elem.Attr...) {
		if a.Key == "src" || a.Key == "srcset" || a.Key == "alt" {
			continue
		}
		if rules.LazyImageSrcset.MatchString(a.Val) {
			dom.SetAttr(elem, "srcset", a.Val)
		} else if rules.LazyImageSrc.MatchString(a.Val) {
			dom.SetAttr(elem, "src", a.Val)
		}
	}
}
