// Package visibility decides whether a node is user-visible and whether its
// ARIA role or class/id signals it is non-content, per spec §4.4.
package visibility

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

// Visible reports whether n is user-visible: it is not display:none,
// visibility:hidden, carrying a boolean hidden attribute, or aria-hidden
// (unless the node has a fallback-image class, the one documented
// exception).
func Visible(c *cache.Cache, n *html.Node) bool {
	if n == nil {
		return false
	}

	var key string
	if c != nil {
		key = c.Fingerprint(n, "visible")
		if v, ok := c.GetVisibility(key); ok {
			return v
		}
	}

	result := computeVisible(n)
	if c != nil {
		c.SetVisibility(key, result)
	}
	return result
}

func computeVisible(n *html.Node) bool {
	style := dom.Attr(n, "style")
	if style != "" && (rules.DisplayNone.MatchString(style) || rules.VisibilityHidden.MatchString(style)) {
		return false
	}
	if dom.HasAttr(n, "hidden") {
		return false
	}
	if dom.Attr(n, "aria-hidden") == "true" {
		if !strings.Contains(dom.Attr(n, "class"), "fallback-image") {
			return false
		}
	}
	return true
}

// IsUnlikelyCandidate reports whether n's class+id+role matches the
// unlikely-candidates regex (and not the maybe-candidate regex), or whether
// its role is in the unlikely-roles lexicon. Callers are responsible for the
// body/anchor/ancestor-of-kept-node exceptions the spec also names, since
// those depend on pipeline state this package does not track.
func IsUnlikelyCandidate(n *html.Node) bool {
	matchString := dom.Attr(n, "class") + " " + dom.Attr(n, "id") + " " + dom.Attr(n, "role")
	if rules.UnlikelyCandidates.MatchString(matchString) && !rules.MaybeCandidate.MatchString(matchString) {
		return true
	}
	role := dom.Attr(n, "role")
	if role != "" && rules.Contains(rules.UnlikelyRoles, role) {
		return true
	}
	return false
}
