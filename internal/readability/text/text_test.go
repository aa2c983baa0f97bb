package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, " a b c ", NormalizeSpaces("  a\n\tb   c  "))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "a b c", Trim("  a\n\tb   c  "))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 0, WordCount("   "))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 5, CharCount("héllo"))
	assert.Equal(t, 2, CharCount("日本"))
}

func TestCountCommas(t *testing.T) {
	assert.Equal(t, 2, CountCommas("a, b, c"))
	assert.Equal(t, 1, CountCommas("日本語、テスト"))
	assert.Equal(t, 1, CountCommas("full，width"))
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div>Hello <b>World</b><p>New block</p></div>`))
	assert.NoError(t, err)

	div := findFirst(doc, "div")
	assert.NotNil(t, div)

	got := InnerText(nil, div, true)
	assert.Equal(t, "Hello World New block", got)
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
