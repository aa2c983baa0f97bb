package readability

import (
	"time"

	"golang.org/x/net/html"
)

// Article is the extracted content and metadata produced by Parse.
type Article struct {
	URL           string
	Title         string
	Byline        string
	Node          *html.Node // root of the cleaned content fragment
	Content       string     // Node serialized back to HTML
	TextContent   string
	Length        int
	Excerpt       string
	SiteName      string
	Image         string
	Favicon       string
	Language      string
	PublishedTime *time.Time
	ModifiedTime  *time.Time
}

// config holds the resolved settings a Parse call runs with. The public
// surface is the Option values built by the With* constructors below.
type config struct {
	url             string
	encoding        string
	strictMetadata  bool
	charThreshold   int
	maxElemsToParse int
}

// Option configures a Parse call.
type Option func(*config)

// WithURL sets the page's original URL, used to resolve relative links and
// images and to seed Article.URL. Without it, hrefs/srcs are left as-is.
func WithURL(rawURL string) Option {
	return func(c *config) { c.url = rawURL }
}

// WithEncoding overrides charset auto-detection (e.g. "windows-1251") for
// input that isn't valid UTF-8 and lacks a reliable <meta charset> hint.
func WithEncoding(encoding string) Option {
	return func(c *config) { c.encoding = encoding }
}

// WithStrictMetadata makes Parse return a metadata-kind error when the page
// has no usable JSON-LD block and no title can be recovered from meta tags
// or DOM heuristics, instead of silently returning an Article with an empty
// Title.
func WithStrictMetadata(strict bool) Option {
	return func(c *config) { c.strictMetadata = strict }
}

// WithCharThreshold overrides the minimum extracted-text length the retry
// ladder requires before accepting an attempt.
func WithCharThreshold(n int) Option {
	return func(c *config) { c.charThreshold = n }
}

// WithMaxElemsToParse caps the number of elements Parse will walk, bailing
// out with a parsing-kind error for documents beyond the limit. Zero (the
// default) means unlimited.
func WithMaxElemsToParse(n int) Option {
	return func(c *config) { c.maxElemsToParse = n }
}
