// Package cache implements the per-extraction memoization the spec calls
// for: inner-text and visibility results keyed by a fingerprint of
// "<stable-node-id>:<operation>[:<flag>]", plus the monotonic node-identity
// counter fingerprints are built from. One Cache is owned exclusively by a
// single extraction (Run): it is Reset between retry attempts and discarded
// (Release) when the extraction ends, mirroring the sync.RWMutex-guarded map pattern the teacher uses for its
// own text cache (internal/simplifiers/text.go).
package cache

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Cache holds the node-identity counter and the memoized results for one
// extraction attempt.
type Cache struct {
	mu sync.RWMutex

	ids    map[*html.Node]uint64
	nextID uint64

	text       map[string]string
	visibility map[string]bool
	ancestor   map[string]bool

	namespace uuid.UUID
}

// New returns an empty Cache ready for one extraction attempt.
func New() *Cache {
	return &Cache{
		ids:        make(map[*html.Node]uint64),
		text:       make(map[string]string),
		visibility: make(map[string]bool),
		ancestor:   make(map[string]bool),
		namespace:  uuid.NewSHA1(uuid.NameSpaceOID, []byte("go-readability/cache")),
	}
}

// idFor assigns a node a monotonically increasing id on first sight.
func (c *Cache) idFor(n *html.Node) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[n]; ok {
		return id
	}
	c.nextID++
	c.ids[n] = c.nextID
	return c.nextID
}

// Fingerprint builds the "<id>:<op>[:<flag>]" cache key for n.
func (c *Cache) Fingerprint(n *html.Node, op string, flags ...string) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(c.idFor(n), 10))
	sb.WriteByte(':')
	sb.WriteString(op)
	for _, f := range flags {
		sb.WriteByte(':')
		sb.WriteString(f)
	}
	return sb.String()
}

// Tag derives a stable UUID for a node's current identity. Retry snapshots
// deep-clone the document, so a cloned node does not share its pointer
// (and therefore not its fingerprint id) with the original it was copied
// from; callers that need identity to survive a clone — e.g. carrying a
// caller-supplied node reference across a retry — can tag the source node
// once and look the same UUID up again after re-tagging the clone in
// document order.
func (c *Cache) Tag(n *html.Node) uuid.UUID {
	id := c.idFor(n)
	return uuid.NewSHA1(c.namespace, []byte(strconv.FormatUint(id, 10)))
}

// GetText returns a cached inner-text result.
func (c *Cache) GetText(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.text[key]
	return v, ok
}

// SetText stores an inner-text result.
func (c *Cache) SetText(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text[key] = value
}

// GetVisibility returns a cached visibility result.
func (c *Cache) GetVisibility(key string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.visibility[key]
	return v, ok
}

// SetVisibility stores a visibility result.
func (c *Cache) SetVisibility(key string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visibility[key] = value
}

// GetAncestorTag returns a cached "has ancestor tag" result.
func (c *Cache) GetAncestorTag(key string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.ancestor[key]
	return v, ok
}

// SetAncestorTag stores a "has ancestor tag" result.
func (c *Cache) SetAncestorTag(key string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ancestor[key] = value
}

// Reset clears every memoized value between retry attempts, as the spec's
// retry controller requires, without discarding the Cache itself.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = make(map[*html.Node]uint64)
	c.nextID = 0
	c.text = make(map[string]string)
	c.visibility = make(map[string]bool)
	c.ancestor = make(map[string]bool)
}

// Release drops every node reference the cache holds. Called once after
// Parse produces its result, so no *html.Node outlives the extraction.
func (c *Cache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = nil
	c.text = nil
	c.visibility = nil
	c.ancestor = nil
}
