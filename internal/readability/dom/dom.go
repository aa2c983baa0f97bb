// Package dom provides the mutable tree operations the extraction pipeline
// needs on top of golang.org/x/net/html: creation, cloning, structural
// mutation, and the depth-first walk the scorer and cleaner rely on. Every
// function here preserves the parent/child invariants of html.Node itself —
// there is no separate arena or id scheme, since html.Node already carries a
// single real Parent pointer and a doubly-linked sibling list.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeName returns the upper-cased tag name of an element node, or "" for
// anything else (including nil).
func NodeName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(n.Data)
}

// IsElement reports whether n is an element with the given upper/lower-case
// insensitive tag name.
func IsElement(n *html.Node, tag string) bool {
	return NodeName(n) == strings.ToUpper(tag)
}

// CreateElement returns a detached element node with the given tag name.
func CreateElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     strings.ToLower(tag),
		DataAtom: atom.Lookup([]byte(strings.ToLower(tag))),
	}
}

// Attr returns the value of attribute key on n, or "" if absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries attribute key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}

// SetAttr sets (or replaces) attribute key on n.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes attribute key from n, if present.
func RemoveAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, key) {
			out = append(out, a)
		}
	}
	n.Attr = out
}

// AppendChild appends child to the end of parent's children list.
func AppendChild(parent, child *html.Node) {
	if child.Parent != nil {
		RemoveNode(child)
	}
	parent.AppendChild(child)
}

// PrependChild inserts child as parent's first child.
func PrependChild(parent, child *html.Node) {
	if child.Parent != nil {
		RemoveNode(child)
	}
	if parent.FirstChild == nil {
		parent.AppendChild(child)
		return
	}
	parent.InsertBefore(child, parent.FirstChild)
}

// RemoveNode detaches n from its parent. A no-op if n has no parent.
func RemoveNode(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// ReplaceNode substitutes old with replacement in old's parent, preserving
// position.
func ReplaceNode(old, replacement *html.Node) {
	if old == nil || old.Parent == nil {
		return
	}
	if replacement.Parent != nil {
		RemoveNode(replacement)
	}
	old.Parent.InsertBefore(replacement, old)
	RemoveNode(old)
}

// CloneShallow returns a detached copy of n's own element/attributes without
// any children.
func CloneShallow(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	attrs := make([]html.Attribute, len(n.Attr))
	copy(attrs, n.Attr)
	return &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     attrs,
	}
}

// CloneTree returns a deep, fully detached copy of the subtree rooted at n.
// Used by the retry controller to snapshot the document before a destructive
// pass, per SPEC_FULL.md's "deep clone per attempt" decision.
func CloneTree(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := CloneShallow(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		AppendChild(clone, CloneTree(c))
	}
	return clone
}

// Children returns the element-node children of n, in document order.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Ancestors returns up to max ancestors of n, nearest first.
func Ancestors(n *html.Node, max int) []*html.Node {
	var out []*html.Node
	for p := n.Parent; p != nil && (max <= 0 || len(out) < max); p = p.Parent {
		out = append(out, p)
	}
	return out
}

// HasAncestorTag reports whether n has an ancestor element with tag name
// tag, optionally bounded to maxDepth levels and filtered by extra.
func HasAncestorTag(n *html.Node, tag string, maxDepth int, extra func(*html.Node) bool) bool {
	tag = strings.ToUpper(tag)
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		if maxDepth > 0 && depth >= maxDepth {
			return false
		}
		if NodeName(p) == tag && (extra == nil || extra(p)) {
			return true
		}
		depth++
	}
	return false
}

// NextNode walks the tree in document (pre-)order, optionally skipping
// descendants of the current node, the way the grab-article pass advances
// while it removes nodes as it goes.
func NextNode(n *html.Node, ignoreSelfAndKids bool) *html.Node {
	if n == nil {
		return nil
	}
	if !ignoreSelfAndKids && n.FirstChild != nil {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode || c.Type == html.TextNode {
				return c
			}
		}
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.NextSibling != nil {
			for s := cur.NextSibling; s != nil; s = s.NextSibling {
				if s.Type == html.ElementNode || s.Type == html.TextNode {
					return s
				}
			}
		}
	}
	return nil
}

// RemoveAndGetNext removes n from the tree and returns the node that would
// have followed it in document order, so a caller iterating with NextNode
// can continue without losing its place.
func RemoveAndGetNext(n *html.Node) *html.Node {
	next := NextNode(n, true)
	RemoveNode(n)
	return next
}

// OuterHTML serializes n (and its subtree) back to an HTML string.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// IsElementWithoutContent reports whether n has no meaningful text and no
// children besides <br>/<hr>.
func IsElementWithoutContent(n *html.Node) bool {
	if n == nil {
		return true
	}
	if strings.TrimSpace(TextContent(n)) != "" {
		return false
	}
	children := Children(n)
	if len(children) == 0 {
		return true
	}
	for _, c := range children {
		if !IsElement(c, "br") && !IsElement(c, "hr") {
			return false
		}
	}
	return true
}

// TextContent concatenates all descendant text nodes verbatim (no
// whitespace normalization — see the text package for that).
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(TextContent(c))
	}
	return sb.String()
}

// HasSingleTagInside reports whether n's only element child is tag and it
// has no non-blank text nodes alongside it.
func HasSingleTagInside(n *html.Node, tag string) bool {
	children := Children(n)
	if len(children) != 1 || !IsElement(children[0], tag) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return false
		}
	}
	return true
}

// FindAll returns every descendant element whose tag name matches any of
// tags (case-insensitive), in document order.
func FindAll(n *html.Node, tags ...string) []*html.Node {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToUpper(t)] = true
	}
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && want[NodeName(c)] {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// FindFirst returns the first descendant matching tag, or nil.
func FindFirst(n *html.Node, tag string) *html.Node {
	all := FindAll(n, tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}
