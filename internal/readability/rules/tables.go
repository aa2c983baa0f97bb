// Package rules holds the compiled regular expressions, keyword lexicons and
// scoring constants shared by every later stage of the extraction pipeline.
// Everything here is process-wide, read-only, and initialized once.
package rules

import "regexp"

// Flags control which relaxations the retry controller has turned off.
type Flags int

const (
	FlagStripUnlikelys Flags = 1 << iota
	FlagWeightClasses
	FlagCleanConditionally
)

// DefaultFlags is the flag set every extraction attempt starts with.
const DefaultFlags = FlagStripUnlikelys | FlagWeightClasses | FlagCleanConditionally

// Tuning constants. Kept in one table per spec Design Notes so every magic
// number used by the scorer, cleaner and retry controller has a name.
const (
	ClassWeightPositive = 25
	ClassWeightNegative = 25

	NTopCandidates   = 5
	CharThreshold    = 500 // retry controller minimum content length
	MinCandidateText = 25  // shortest inner text a scored node may have

	SiblingScoreFallback = 10.0 // lower bound of the sibling threshold max(10, top*0.2)
	SiblingScoreFraction = 0.2
	ParentPromotionDelta = 0.75 // parent must score within this fraction of child
	ParentPromotionMinSiblings = 3

	InnerTextCacheThreshold = 500 // raw chars before a subtree's text gets cached

	BaseContentScore  = 1.0
	CommaBonus        = 1.0
	TextLengthDivisor = 100.0
	MaxLengthBonus    = 3.0

	AncestorLevelDepth     = 5
	AncestorDividerLevel0  = 1.0
	AncestorDividerLevel1  = 2.0
	AncestorDividerPerStep = 3.0

	DivInitialScore          = 5.0
	BlockquoteInitialScore   = 3.0
	NegativeListInitialScore = -3.0
	HeadingInitialScore      = -5.0

	SameClassSiblingBonus       = 0.2
	MinParagraphLength          = 80
	ParagraphLinkDensityThreshold = 0.25

	MinCommaCount                      = 10
	HeadingDensityThreshold             = 0.9
	ConditionalWeightThreshold          = 25 // spec §4.10 step 4: weight < 25 vs weight >= 25
	ConditionalLinkDensityThresholdLow  = 0.2
	ConditionalLinkDensityThresholdHigh = 0.5
	MinEmbedContentLength               = 75
	ListLinkDensityThreshold            = 0.25
	LayoutTableTextContentThreshold     = 500
)

// DefaultTagsToScore lists the elements eligible for direct content scoring.
var DefaultTagsToScore = []string{"SECTION", "H2", "H3", "H4", "H5", "H6", "P", "TD", "PRE"}

// ClassesToPreserve lists class names kept verbatim by the class cleaner.
var ClassesToPreserve = []string{"page"}

// UnlikelyRoles lists ARIA roles that mark a node as non-content.
var UnlikelyRoles = []string{"menu", "menubar", "complementary", "navigation", "alert", "alertdialog", "dialog"}

// DivToPElems lists elements whose presence inside a <div> disqualifies it
// from being promoted to a <p>.
var DivToPElems = []string{"BLOCKQUOTE", "DL", "DIV", "IMG", "OL", "P", "PRE", "TABLE", "UL"}

// AlterToDivExceptions lists tags that must never be downgraded to <div>.
var AlterToDivExceptions = []string{"DIV", "ARTICLE", "SECTION", "P"}

// PresentationalAttributes lists purely cosmetic attributes stripped by cleanup.
var PresentationalAttributes = []string{
	"align", "background", "bgcolor", "border", "cellpadding",
	"cellspacing", "frame", "hspace", "rules", "style", "valign", "vspace",
}

// DeprecatedSizeAttributeElems lists elements whose width/height attributes
// are still meaningful despite being deprecated HTML.
var DeprecatedSizeAttributeElems = []string{"TABLE", "TH", "TD", "HR", "PRE"}

// PhrasingElems lists inline/phrasing-content elements used to decide where
// a <br>-run paragraph should stop absorbing siblings.
var PhrasingElems = []string{
	"ABBR", "AUDIO", "B", "BDO", "BR", "BUTTON", "CITE", "CODE", "DATA",
	"DATALIST", "DFN", "EM", "EMBED", "I", "IMG", "INPUT", "KBD", "LABEL",
	"MARK", "MATH", "METER", "NOSCRIPT", "OBJECT", "OUTPUT", "PROGRESS", "Q",
	"RUBY", "SAMP", "SCRIPT", "SELECT", "SMALL", "SPAN", "STRONG", "SUB",
	"SUP", "TEXTAREA", "TIME", "VAR", "WBR",
}

// LazyImageAttrs is the core set of lazy-load attribute names promoted to
// src/srcset during pre-processing. Spec Open Questions leaves the full set
// site-specific; this module carries only the documented core four.
var LazyImageAttrs = []string{"data-src", "data-original", "data-lazy-src", "data-srcset"}

// Compiled regular expressions. Names mirror original_source/readability/regexps.py
// (RX_* constants) so behavior can be cross-checked against the source this
// spec was distilled from.
var (
	UnlikelyCandidates = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	MaybeCandidate     = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)
	Positive           = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	Negative           = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)
	Byline             = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)
	Normalize          = regexp.MustCompile(`\s+`)
	Videos             = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)
	ShareElements      = regexp.MustCompile(`(?i)(\b|_)(share|sharedaddy)(\b|_)`)
	Tokenize           = regexp.MustCompile(`\W+`)
	HashURL            = regexp.MustCompile(`^#.+`)
	SrcsetURL          = regexp.MustCompile(`(\S+)(\s+[\d.]+[xw])?(\s*(?:,|$))`)
	B64DataURL         = regexp.MustCompile(`(?i)^data:\s*([^\s;,]+)\s*;\s*base64\s*,`)
	JSONLDArticleTypes = regexp.MustCompile(`(?i)^Article|AdvertiserContentArticle|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference$`)
	SchemaOrgURL       = regexp.MustCompile(`(?i)^https?://schema\.org/?$`)
	CDATAWrapper       = regexp.MustCompile(`^\s*<!\[CDATA\[|\]\]>\s*$`)
	DisplayNone        = regexp.MustCompile(`(?i)display\s*:\s*none`)
	VisibilityHidden   = regexp.MustCompile(`(?i)visibility\s*:\s*hidden`)
	FaviconSize        = regexp.MustCompile(`(\d+)x(\d+)`)
	ImageExtension     = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif|svg)`)
	LazyImageSrcset    = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)\s+\d`)
	LazyImageSrc       = regexp.MustCompile(`(?i)^\s*\S+\.(jpg|jpeg|png|webp)\S*\s*$`)

	TitleSeparator        = regexp.MustCompile(` [|\-\\/>»] `)
	TitleHierarchySep     = regexp.MustCompile(` [\\/>»] `)
	TitleRemoveFinalPart  = regexp.MustCompile(`(.*)[|\-\\/>»] .*`)
	TitleRemoveFirstPart  = regexp.MustCompile(`[^|\-\\/>»]*[|\-\\/>»](.*)`)
	TitleAnySeparator     = regexp.MustCompile(`[|\-\\/>»]+`)

	MetaPropertyPattern = regexp.MustCompile(`(?i)^\s*(dc|dcterm|og|article|twitter)\s*:\s*(author|creator|description|title|site_name|published_time|modified_time|image\S*)\s*$`)
	MetaNamePattern     = regexp.MustCompile(`(?i)^\s*(?:(dc|dcterm|article|og|twitter)\s*[.:]\s*)?(author|creator|description|title|site_name|published_time|modified_time|image)\s*$`)
)

// ClassWeight returns the class+id based content-likelihood weight: +25 per
// positive-regex hit and -25 per negative-regex hit, across both strings.
func ClassWeight(class, id string) int {
	weight := 0
	if class != "" {
		if Negative.MatchString(class) {
			weight -= ClassWeightNegative
		}
		if Positive.MatchString(class) {
			weight += ClassWeightPositive
		}
	}
	if id != "" {
		if Negative.MatchString(id) {
			weight -= ClassWeightNegative
		}
		if Positive.MatchString(id) {
			weight += ClassWeightPositive
		}
	}
	return weight
}

// Contains reports whether s is present in slice, case-sensitively.
func Contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
