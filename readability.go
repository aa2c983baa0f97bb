package readability

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/mrjoshuak/go-readability/internal/errs"
	"github.com/mrjoshuak/go-readability/internal/readability"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
)

// Parse extracts the principal article from input, which must be a string,
// []byte, or io.Reader of HTML. It is the package's sole entry point.
func Parse(input any, opts ...Option) (*Article, error) {
	cfg := config{charThreshold: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := readerFor(input)
	if err != nil {
		return nil, errs.Parsing("Parse", "unsupported input type", err)
	}

	doc, err := parseDocument(r, cfg.encoding)
	if err != nil {
		return nil, errs.Parsing("Parse", "failed to parse HTML", err)
	}

	if cfg.maxElemsToParse > 0 {
		if n := countElements(doc); n > cfg.maxElemsToParse {
			return nil, errs.Parsing("Parse", fmt.Sprintf("document has %d elements, exceeding MaxElemsToParse %d", n, cfg.maxElemsToParse), nil)
		}
	}

	var base *url.URL
	if cfg.url != "" {
		base, err = url.Parse(cfg.url)
		if err != nil {
			return nil, errs.Parsing("Parse", "invalid URL option", err)
		}
	}

	engineOpts := readability.DefaultOptions()
	engineOpts.URL = base
	engineOpts.StrictMetadata = cfg.strictMetadata
	if cfg.charThreshold > 0 {
		engineOpts.CharThreshold = cfg.charThreshold
	}

	result, err := readability.Run(doc, engineOpts)
	if err != nil {
		return nil, err
	}

	article := &Article{
		URL:           cfg.url,
		Title:         result.Title,
		Byline:        result.Byline,
		Node:          result.Content,
		Content:       dom.OuterHTML(result.Content),
		TextContent:   result.TextContent,
		Length:        result.Length,
		Excerpt:       result.Excerpt,
		SiteName:      result.SiteName,
		Image:         result.Image,
		Favicon:       result.Favicon,
		Language:      result.Language,
		PublishedTime: result.PublishedTime,
		ModifiedTime:  result.ModifiedTime,
	}

	return article, nil
}

func readerFor(input any) (io.Reader, error) {
	switch v := input.(type) {
	case string:
		return bytes.NewReader([]byte(v)), nil
	case []byte:
		return bytes.NewReader(v), nil
	case io.Reader:
		return v, nil
	default:
		return nil, fmt.Errorf("input must be string, []byte, or io.Reader, got %T", input)
	}
}

// parseDocument decodes r to UTF-8 (via an explicit encoding override or
// charset auto-detection, falling back to the raw bytes as-is) and parses
// it into an *html.Node document tree.
func parseDocument(r io.Reader, encoding string) (*html.Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var utf8Reader io.Reader = bytes.NewReader(raw)
	if encoding != "" {
		enc, _ := charset.Lookup(encoding)
		if enc == nil {
			return nil, fmt.Errorf("unknown encoding %q", encoding)
		}
		utf8Reader = enc.NewDecoder().Reader(bytes.NewReader(raw))
	} else if detected, err := charset.NewReader(bytes.NewReader(raw), ""); err == nil {
		utf8Reader = detected
	}

	return html.Parse(utf8Reader)
}

func countElements(n *html.Node) int {
	count := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			count++
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return count
}
