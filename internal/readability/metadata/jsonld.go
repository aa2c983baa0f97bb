package metadata

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// jsonLDValue is the recursive tagged variant the spec's Design Notes call
// for: a JSON-LD field may be a scalar string, an object ({url, name, ...}),
// or an array of either, in any combination and at any nesting depth.
type jsonLDValue struct {
	str   string
	isStr bool
	obj   map[string]any
	isObj bool
	arr   []jsonLDValue
	isArr bool
}

func decodeJSONLDValue(raw any) jsonLDValue {
	switch v := raw.(type) {
	case string:
		return jsonLDValue{str: v, isStr: true}
	case map[string]any:
		return jsonLDValue{obj: v, isObj: true}
	case []any:
		arr := make([]jsonLDValue, 0, len(v))
		for _, item := range v {
			arr = append(arr, decodeJSONLDValue(item))
		}
		return jsonLDValue{arr: arr, isArr: true}
	default:
		return jsonLDValue{}
	}
}

// name extracts a canonical name from the value: the scalar itself if it's
// a string, obj["name"] if it's an object (other keys are ignored),
// or the comma-joined names of every element if it's an array — which is
// exactly how JSON-LD "author" fields (scalar, object, or array of either)
// need to normalize per spec §4.6.
func (v jsonLDValue) name() string {
	if v.isStr {
		return v.str
	}
	if v.isObj {
		if n, ok := v.obj["name"].(string); ok {
			return n
		}
		return ""
	}
	if v.isArr {
		var parts []string
		for _, item := range v.arr {
			if n := item.name(); n != "" {
				parts = append(parts, n)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// url extracts the canonical URL reading of a value (used for "image").
func (v jsonLDValue) url() string {
	if v.isStr {
		return v.str
	}
	if v.isObj {
		if u, ok := v.obj["url"].(string); ok {
			return u
		}
	}
	if v.isArr && len(v.arr) > 0 {
		return v.arr[0].url()
	}
	return ""
}

// JSONLD holds the fields harvested from a single qualifying JSON-LD block.
type JSONLD struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	Image         string
	PublishedTime string
	ModifiedTime  string
}

// ExtractJSONLD scans every <script type="application/ld+json"> under doc
// and returns the fields from the first block whose @context matches
// schema.org and whose @type matches the article-types lexicon. CDATA
// wrappers are stripped before parsing, per spec §4.6.
func ExtractJSONLD(doc *html.Node) (JSONLD, bool) {
	for _, script := range dom.FindAll(doc, "script") {
		if !strings.EqualFold(dom.Attr(script, "type"), "application/ld+json") {
			continue
		}
		content := rules.CDATAWrapper.ReplaceAllString(dom.TextContent(script), "")

		var raw map[string]any
		if err := json.Unmarshal([]byte(content), &raw); err != nil {
			continue // malformed JSON-LD is a silent MetadataExtractionError, not fatal
		}

		ctx, _ := raw["@context"].(string)
		if !rules.SchemaOrgURL.MatchString(strings.TrimSpace(ctx)) {
			continue
		}

		if !typeMatches(raw["@type"]) {
			continue
		}

		var out JSONLD
		if headline, ok := raw["headline"].(string); ok && headline != "" {
			out.Title = headline
		} else if name, ok := raw["name"].(string); ok {
			out.Title = name
		}
		if author, ok := raw["author"]; ok {
			out.Byline = decodeJSONLDValue(author).name()
		}
		if desc, ok := raw["description"].(string); ok {
			out.Excerpt = desc
		}
		if publisher, ok := raw["publisher"]; ok {
			out.SiteName = decodeJSONLDValue(publisher).name()
		}
		if image, ok := raw["image"]; ok {
			out.Image = decodeJSONLDValue(image).url()
		}
		if published, ok := raw["datePublished"].(string); ok {
			out.PublishedTime = published
		}
		if modified, ok := raw["dateModified"].(string); ok {
			out.ModifiedTime = modified
		}

		return out, true
	}
	return JSONLD{}, false
}

func typeMatches(t any) bool {
	switch v := t.(type) {
	case string:
		return rules.JSONLDArticleTypes.MatchString(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && rules.JSONLDArticleTypes.MatchString(s) {
				return true
			}
		}
	}
	return false
}
