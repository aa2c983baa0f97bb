package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/go-readability/internal/readability/cache"
	"github.com/mrjoshuak/go-readability/internal/readability/dom"
	"github.com/mrjoshuak/go-readability/internal/readability/rules"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	assert.NoError(t, err)
	return doc
}

func TestLinkDensityOfPureText(t *testing.T) {
	doc := parse(t, `<html><body><p>plain text with no links at all here</p></body></html>`)
	c := cache.New()
	p := dom.FindFirst(doc, "p")
	assert.Equal(t, 0.0, LinkDensity(c, p))
}

func TestLinkDensityOfAllLinkText(t *testing.T) {
	doc := parse(t, `<html><body><p><a href="#">all of this text is a link</a></p></body></html>`)
	c := cache.New()
	p := dom.FindFirst(doc, "p")
	assert.Equal(t, 1.0, LinkDensity(c, p))
}

// ScoreTree gives a <p> no candidate of its own: its base, comma and
// length bonus go to its ancestors, undivided at the parent (divider level
// 0), per spec §4.7's ancestor-propagation rule — so the floor/cap behavior
// is observed on the enclosing <div>, not the <p> itself.
func TestScoreTreeFloorsLengthBonusAt100CharBoundary(t *testing.T) {
	// 250 non-comma characters: floor(250/100) = 2, not 2.5.
	body := `<html><body><div><p>` + strings.Repeat("x", 250) + `</p></div></body></html>`
	doc := parse(t, body)
	c := cache.New()
	div := dom.FindFirst(doc, "div")
	table := ScoreTree(dom.FindFirst(doc, "body"), rules.DefaultFlags, c)
	cand, ok := table.Get(div)
	assert.True(t, ok)
	wantContentScore := rules.BaseContentScore + 2.0
	assert.Equal(t, rules.DivInitialScore+wantContentScore, cand.Score)
}

func TestScoreTreeCapsLengthBonusAtMax(t *testing.T) {
	body := `<html><body><div><p>` + strings.Repeat("x", 1000) + `</p></div></body></html>`
	doc := parse(t, body)
	c := cache.New()
	div := dom.FindFirst(doc, "div")
	table := ScoreTree(dom.FindFirst(doc, "body"), rules.DefaultFlags, c)
	cand, ok := table.Get(div)
	assert.True(t, ok)
	wantContentScore := rules.BaseContentScore + rules.MaxLengthBonus
	assert.Equal(t, rules.DivInitialScore+wantContentScore, cand.Score)
}

func TestSelectTopPersistsLinkDensityAdjustment(t *testing.T) {
	doc := parse(t, `<html><body><div><a href="#">link text here that is long enough to matter</a> trailing plain words padding out the total length some more</div></body></html>`)
	c := cache.New()
	div := dom.FindFirst(doc, "div")

	table := newTable()
	table.addOrBump(div, 0, 100.0)

	density := LinkDensity(c, div)
	assert.Greater(t, density, 0.0)

	top, ok := SelectTop(table, c)
	assert.True(t, ok)
	assert.InDelta(t, 100.0*(1-density), top.Score, 1e-9)

	// The adjustment must be visible through the table too, not just the
	// returned Candidate — SelectTop is documented to mutate Candidate.Score
	// in place rather than compute a transient sort key.
	cand, _ := table.Get(div)
	assert.InDelta(t, 100.0*(1-density), cand.Score, 1e-9)
}

func TestSelectTopReturnsFalseForEmptyTable(t *testing.T) {
	table := newTable()
	c := cache.New()
	_, ok := SelectTop(table, c)
	assert.False(t, ok)
}
