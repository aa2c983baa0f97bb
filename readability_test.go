package readability_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-readability"
)

const sampleHTML = `<html><head><title>Sample Article &mdash; Example Site</title>
<meta property="og:site_name" content="Example Site">
</head><body>
<header><nav><ul><li><a href="/">Home</a></li></ul></nav></header>
<article>
<h1>Sample Article</h1>
<p class="byline">By Jane Doe</p>
<p>This is the first paragraph of the article, long enough to score well against the navigation and footer noise surrounding it in this fixture document.</p>
<p>This is the second paragraph, continuing the same thought with enough additional text to keep the link density low and the content score high for this block.</p>
</article>
<footer><p>Copyright 2026</p></footer>
</body></html>`

func TestParseBasic(t *testing.T) {
	article, err := readability.Parse(sampleHTML, readability.WithURL("https://example.com/a/article.html"))
	require.NoError(t, err)

	assert.Contains(t, article.Title, "Sample Article")
	assert.Contains(t, article.TextContent, "first paragraph")
	assert.Contains(t, article.TextContent, "second paragraph")
	assert.NotContains(t, article.TextContent, "Copyright")
	assert.Equal(t, "https://example.com/a/article.html", article.URL)
	assert.Equal(t, "Example Site", article.SiteName)
}

func TestParseFromReader(t *testing.T) {
	article, err := readability.Parse(strings.NewReader(sampleHTML))
	require.NoError(t, err)
	assert.NotEmpty(t, article.Content)
}

func TestParseFromBytes(t *testing.T) {
	article, err := readability.Parse([]byte(sampleHTML))
	require.NoError(t, err)
	assert.NotEmpty(t, article.TextContent)
}

func TestParseRejectsUnsupportedInput(t *testing.T) {
	_, err := readability.Parse(42)
	assert.Error(t, err)
}

func TestParseMaxElemsToParse(t *testing.T) {
	_, err := readability.Parse(sampleHTML, readability.WithMaxElemsToParse(1))
	assert.Error(t, err)
}
