package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestExtractTitleHierarchical(t *testing.T) {
	doc := parse(t, `<html><head><title>Example Site - Understanding Go Interfaces Deeply</title></head><body></body></html>`)
	assert.Equal(t, "Understanding Go Interfaces Deeply", ExtractTitle(doc))
}

func TestExtractTitleFallsBackToH1(t *testing.T) {
	doc := parse(t, `<html><head><title>null</title></head><body><h1>The Only Heading On This Page</h1></body></html>`)
	assert.Equal(t, "The Only Heading On This Page", ExtractTitle(doc))
}

func TestExtractByline(t *testing.T) {
	doc := parse(t, `<html><body><span class="byline">By Jane Doe</span><p>content</p></body></html>`)
	assert.Equal(t, "By Jane Doe", ExtractByline(doc))
}

func TestExtractBylineRelAuthor(t *testing.T) {
	doc := parse(t, `<html><body><a rel="author" href="/u/jd">Jane Doe</a></body></html>`)
	assert.Equal(t, "Jane Doe", ExtractByline(doc))
}

func TestScanMetaTagsPrecedence(t *testing.T) {
	doc := parse(t, `<html><head>
<meta name="twitter:title" content="Twitter Title">
<meta property="og:title" content="OG Title">
</head><body></body></html>`)
	tags := ScanMetaTags(doc)
	assert.Equal(t, "OG Title", tags.Resolve("title"))
}

func TestExtractJSONLD(t *testing.T) {
	doc := parse(t, `<html><head><script type="application/ld+json">
{"@context":"https://schema.org","@type":"Article","headline":"JSON-LD Headline","author":{"name":"J. Writer"}}
</script></head><body></body></html>`)
	ld, ok := ExtractJSONLD(doc)
	assert.True(t, ok)
	assert.Equal(t, "JSON-LD Headline", ld.Title)
	assert.Equal(t, "J. Writer", ld.Byline)
}

func TestExtractFaviconPicksLargest(t *testing.T) {
	doc := parse(t, `<html><head>
<link rel="icon" sizes="16x16" href="/small.png">
<link rel="icon" sizes="64x64" href="/large.png">
</head><body></body></html>`)
	assert.Equal(t, "/large.png", ExtractFavicon(doc, nil))
}
