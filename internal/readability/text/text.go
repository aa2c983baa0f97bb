// Package text provides the whitespace-normalization, counting and
// inner-text extraction primitives every later pipeline stage builds on.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// NormalizeSpaces collapses every run of Unicode whitespace to a single
// space. It does not trim leading/trailing space.
func NormalizeSpaces(s string) string {
	return rules.Normalize.ReplaceAllString(s, " ")
}

// Trim normalizes spaces then strips leading/trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(NormalizeSpaces(s))
}

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount returns the number of Unicode code points in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// CountCommas counts ASCII commas and the common CJK comma forms (the
// fullwidth comma U+FF0C and the ideographic comma U+3001). Fullwidth forms
// are folded to their narrow equivalent first via golang.org/x/text/width,
// the same dependency the teacher already carries for unicode normalization.
func CountCommas(s string) int {
	folded, _, err := transform.String(width.Fold, s)
	if err != nil {
		folded = s
	}
	count := 0
	for _, r := range folded {
		if r == ',' || r == '、' {
			count++
		}
	}
	return count
}

// InnerText concatenates the descendant text of n in document order. When
// normalize is true the result is passed through Trim. Results for subtrees
// whose raw text is at least rules.InnerTextCacheThreshold bytes are memoized in c
// (nil disables caching).
func InnerText(c *cache.Cache, n *html.Node, normalize bool) string {
	raw := rawInnerText(n)

	if c != nil && len(raw) >= rules.InnerTextCacheThreshold {
		key := c.Fingerprint(n, "innerText", flagSuffix(normalize))
		if v, ok := c.GetText(key); ok {
			return v
		}
		result := finishInnerText(raw, normalize)
		c.SetText(key, result)
		return result
	}

	return finishInnerText(raw, normalize)
}

func flagSuffix(normalize bool) string {
	if normalize {
		return "norm"
	}
	return "raw"
}

func finishInnerText(raw string, normalize bool) string {
	if normalize {
		return Trim(raw)
	}
	return raw
}

// rawInnerText concatenates text nodes, inserting padding spaces around
// block-level descendants so adjacent words from different blocks do not
// collide once whitespace is collapsed.
func rawInnerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			if isPhrasing(c) {
				sb.WriteString(rawInnerText(c))
			} else {
				sb.WriteString(" ")
				sb.WriteString(rawInnerText(c))
				sb.WriteString(" ")
			}
		}
	}
	return sb.String()
}

func isPhrasing(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	tag := strings.ToUpper(n.Data)
	if rules.Contains(rules.PhrasingElems, tag) {
		return true
	}
	if tag == "A" || tag == "DEL" || tag == "INS" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !isPhrasing(c) {
				return false
			}
		}
		return true
	}
	return false
}
