/*
Package readability extracts the principal human-readable article from an
arbitrary HTML document: cleaned content, plain text, structured metadata,
and a character-length measure, following the heuristics Mozilla's
Readability.js popularized.

Basic usage:

    article, err := readability.Parse(htmlString, readability.WithURL(pageURL))
    if err != nil {
        // handle error
    }
    fmt.Println(article.Title)
    fmt.Println(article.TextContent)

Parse accepts a string, []byte, or io.Reader as input, and resolves
relative links/images against WithURL when one is supplied. Metadata
extraction failures are swallowed by default (spec-compatible behavior);
pass WithStrictMetadata(true) to surface them as errors instead.
*/
package readability
