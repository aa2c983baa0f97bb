// Package readability wires the rules/dom/text/cache/visibility/prepare/
// metadata/score/assemble/clean subpackages into the retry-ladder
// orchestrator spec §4.11-4.12 describes. Grounded on the teacher's
// grabArticle retry loop (formerly internal/readability/extraction.go,
// removed once its logic was fully absorbed into Run below) and
// Parse/getArticleMetadata (formerly readability.go).
package readability

import (
	"net/url"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/assemble"
	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/clean"
	"github.com/mrjoshuak/go-readability/internal/errs"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/metadata"
	"github.com/mrjoshuak/go-readability/internal/readability/prepare"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
	"github.com/mrjoshuak/go-readability/internal/readability/score"
	"github.com/mrjoshuak/go-readability/internal/readability/text"
)

// Options configures one extraction run.
type Options struct {
	URL             *url.URL
	CharThreshold   int
	MaxElemsToParse int
	KeepClasses     bool
	StrictMetadata  bool
	AllowedVideo    *regexp.Regexp
}

// DefaultOptions returns the zero-value-safe option set Run falls back to.
func DefaultOptions() Options {
	return Options{
		CharThreshold: rules.CharThreshold,
		AllowedVideo:  rules.Videos,
	}
}

// Result is the engine's internal extraction product; the root package
// maps it onto the public Article type.
type Result struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	Image         string
	Favicon       string
	Language      string
	PublishedTime *time.Time
	ModifiedTime  *time.Time
	Content       *html.Node
	TextContent   string
	Length        int
	Attempts      int
	UsedFallback  bool
}

// Run parses doc (already tokenized into an *html.Node tree rooted at the
// document node) and produces a Result. doc is mutated destructively;
// callers that need the original must clone it first.
func Run(doc *html.Node, opts Options) (*Result, error) {
	if opts.CharThreshold <= 0 {
		opts.CharThreshold = rules.CharThreshold
	}
	if opts.AllowedVideo == nil {
		opts.AllowedVideo = rules.Videos
	}

	md, err := harvestMetadata(doc, opts)
	if err != nil {
		return nil, err
	}

	prepare.Document(doc)

	c := cache.New()
	defer c.Release()

	flags := rules.DefaultFlags
	original := dom.CloneTree(doc)

	var content *html.Node
	var best *html.Node
	bestLength := -1
	bestFlags := flags
	attempts := 0
	usedFallback := false

	for {
		attempts++
		content = grabArticle(doc, flags, c, opts)
		length := len(text.InnerText(c, content, true))
		if length > bestLength {
			bestLength = length
			best = dom.CloneTree(content)
			bestFlags = flags
		}
		if length >= opts.CharThreshold {
			break
		}

		var next rules.Flags
		exhausted := false
		switch {
		case flags&rules.FlagStripUnlikelys != 0:
			next = flags &^ rules.FlagStripUnlikelys
		case flags&rules.FlagWeightClasses != 0:
			next = flags &^ rules.FlagWeightClasses
		case flags&rules.FlagCleanConditionally != 0:
			next = flags &^ rules.FlagCleanConditionally
		default:
			exhausted = true
		}
		if exhausted {
			// spec §4.11 final step: accept the best-of-attempts, the
			// attempt whose content_length is largest across the ladder.
			usedFallback = true
			content = best
			flags = bestFlags
			break
		}
		flags = next
		doc = dom.CloneTree(original)
		c.Reset()
	}

	if bestLength <= 0 {
		return nil, errs.Extraction("Run", "no viable article content found after all retries", nil)
	}

	prepArticle(content, flags, c, opts)

	plain := text.InnerText(c, content, true)

	return &Result{
		Title:         md.Title,
		Byline:        md.Byline,
		Excerpt:       md.Excerpt,
		SiteName:      md.SiteName,
		Image:         md.Image,
		Favicon:       md.Favicon,
		Language:      md.Language,
		PublishedTime: md.PublishedTime,
		ModifiedTime:  md.ModifiedTime,
		Content:       content,
		TextContent:   plain,
		Length:        text.CharCount(plain),
		Attempts:      attempts,
		UsedFallback:  usedFallback,
	}, nil
}

// grabArticle runs one attempt of the strip -> score -> select -> assemble
// pipeline over doc under the given flags.
func grabArticle(doc *html.Node, flags rules.Flags, c *cache.Cache, opts Options) *html.Node {
	body := dom.FindFirst(doc, "body")
	if body == nil {
		body = doc
	}

	if flags&rules.FlagStripUnlikelys != 0 {
		prepare.RemoveUnlikelyCandidates(body, nil)
	}

	table := score.ScoreTree(body, flags, c)
	top, ok := score.SelectTop(table, c)
	if !ok {
		return body
	}

	return assemble.Build(top, table, c)
}

// prepArticle runs the post-processing cleaner over the assembled content,
// ported from the teacher's prepArticle (formerly preparation.go). The
// assembled article is a fresh clone of the nodes that were scored during
// the winning grabArticle attempt (assemble.Build copies, it doesn't move),
// so the score map keyed by those original nodes can't be reused here:
// conditional cleaning re-scores content directly so "content_score =
// score_map.get(node, 0)" (spec §4.10 step 4) has a table to consult.
func prepArticle(content *html.Node, flags rules.Flags, c *cache.Cache, opts Options) {
	clean.Styles(content)
	clean.MarkDataTables(content)
	prepare.FixLazyImages(content)

	table := score.ScoreTree(content, flags, c)

	if flags&rules.FlagCleanConditionally != 0 {
		clean.Conditionally(content, "form", table, c)
		clean.Conditionally(content, "fieldset", table, c)
	}
	clean.RemoveTag(content, "object", opts.AllowedVideo)
	clean.RemoveTag(content, "embed", opts.AllowedVideo)
	clean.RemoveTag(content, "footer", nil)
	clean.RemoveTag(content, "link", nil)
	clean.RemoveTag(content, "aside", nil)
	clean.RemoveTag(content, "nav", nil)

	clean.RemoveShareElements(content, c, opts.CharThreshold)

	clean.RemoveTag(content, "iframe", opts.AllowedVideo)
	clean.RemoveTag(content, "input", nil)
	clean.RemoveTag(content, "textarea", nil)
	clean.RemoveTag(content, "select", nil)
	clean.RemoveTag(content, "button", nil)

	if flags&rules.FlagCleanConditionally != 0 {
		clean.Conditionally(content, "table", table, c)
		clean.Conditionally(content, "ul", table, c)
		clean.Conditionally(content, "div", table, c)
	}

	clean.RemoveEmptyParagraphs(content)
	clean.RemoveBrsBeforeParagraphs(content)
	clean.UnwrapSingleCellTables(content)
	clean.RemoveVideoHosts(content)

	if opts.URL != nil {
		clean.FixRelativeURIs(content, opts.URL)
	}
	clean.SimplifyNestedElements(content)
	if !opts.KeepClasses {
		clean.Classes(content, rules.ClassesToPreserve)
	}
}

type harvestedMetadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	Image         string
	Favicon       string
	Language      string
	PublishedTime *time.Time
	ModifiedTime  *time.Time
}

// harvestMetadata runs the precedence chain spec §4.6 describes: JSON-LD
// first, falling back to namespaced meta tags, then DOM heuristics for
// byline and title, per original_source/readability/metadata precedence.
// A total miss (no JSON-LD, no title from any source) is swallowed unless
// opts.StrictMetadata asks for it to surface as a MetadataExtractionError,
// per spec §6/§7.
func harvestMetadata(doc *html.Node, opts Options) (harvestedMetadata, error) {
	jsonLD, hasJSONLD := metadata.ExtractJSONLD(doc)
	tags := metadata.ScanMetaTags(doc)

	out := harvestedMetadata{}

	out.Title = firstNonEmpty(jsonLD.Title, tags.Resolve("title"), metadata.ExtractTitle(doc))
	out.Byline = firstNonEmpty(jsonLD.Byline, tags.Resolve("author"), tags.Resolve("creator"), metadata.ExtractByline(doc))
	out.Excerpt = firstNonEmpty(jsonLD.Excerpt, tags.Resolve("description"))
	out.SiteName = firstNonEmpty(jsonLD.SiteName, tags.Resolve("site_name"))
	out.Image = firstNonEmpty(jsonLD.Image, tags.Resolve("image"))
	out.Favicon = metadata.ExtractFavicon(doc, opts.URL)
	out.Language = dom.Attr(dom.FindFirst(doc, "html"), "lang")

	out.PublishedTime = parseTime(firstNonEmpty(jsonLD.PublishedTime, tags.Resolve("published_time")))
	out.ModifiedTime = parseTime(firstNonEmpty(jsonLD.ModifiedTime, tags.Resolve("modified_time")))

	if opts.StrictMetadata && !hasJSONLD && out.Title == "" {
		return out, errs.Metadata("harvestMetadata", "no JSON-LD, meta tags, or title/h1 fallback produced a title", errs.ErrNoMetadata)
	}

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseTime parses a non-empty date string with dateparse, which handles
// the many near-ISO-8601 shapes sites put in JSON-LD/meta tags without
// requiring strict RFC3339. Returns nil on empty input or parse failure —
// a malformed date is a silent metadata gap, not a fatal error.
func parseTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	return &t
}
