package readability

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestGetLinkDensity(t *testing.T) {
	tests := []struct {
		name string
		html string
		min  float64
		max  float64
	}{
		{
			name: "no links",
			html: `<div>just some plain prose here</div>`,
			min:  0, max: 0,
		},
		{
			name: "all link text",
			html: `<div><a href="/x">entirely a link label</a></div>`,
			min:  0.99, max: 1.01,
		},
		{
			name: "half link text",
			html: `<div>aaaaaaaaaa<a href="/x">bbbbbbbbbb</a></div>`,
			min:  0.45, max: 0.55,
		},
		{
			name: "fragment links discounted",
			html: `<div>aaaaaaaaaa<a href="#top">bbbbbbbbbb</a></div>`,
			min:  0.10, max: 0.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := docFrom(t, tt.html).Find("div")
			got := getLinkDensity(sel)
			if got < tt.min || got > tt.max {
				t.Errorf("density = %f, want within [%f, %f]", got, tt.min, tt.max)
			}
		})
	}
}

func TestGetClassWeight(t *testing.T) {
	tests := []struct {
		name string
		html string
		want float64
	}{
		{"positive class", `<div class="article-body">x</div>`, classWeight},
		{"negative class", `<div class="sidebar">x</div>`, -classWeight},
		{"positive id", `<div id="main-content">x</div>`, 2 * classWeight},
		{"negative id", `<div id="footer">x</div>`, -classWeight},
		{"mixed", `<div class="content" id="comments">x</div>`, 0},
		{"case insensitive", `<div class="ARTICLE">x</div>`, classWeight},
		{"no hints", `<div class="wrapper-x12">x</div>`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := docFrom(t, tt.html).Find("div")
			if got := getClassWeight(sel); got != tt.want {
				t.Errorf("weight = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestInitialScore(t *testing.T) {
	tests := []struct {
		tag  string
		want float64
	}{
		{"div", divInitialScore},
		{"article", divInitialScore},
		{"blockquote", blockInitialScore},
		{"pre", blockInitialScore},
		{"ul", listInitialScore},
		{"form", listInitialScore},
		{"h1", headingInitialScore},
		{"th", headingInitialScore},
		{"span", 0},
	}

	for _, tt := range tests {
		if got := initialScore(tt.tag); got != tt.want {
			t.Errorf("initialScore(%q) = %f, want %f", tt.tag, got, tt.want)
		}
	}
}

func TestTopCandidateTieBreak(t *testing.T) {
	// Two identical containers produce identical scores; the earlier one
	// in document order must win. Sibling merge is off so the choice of
	// top candidate is observable directly.
	prose := strings.Repeat("A sentence with a comma, and some length to it. ", 4)
	html := `<html><body>
<div id="first"><p>` + prose + `</p></div>
<div id="second"><p>` + prose + `</p></div>
</body></html>`

	opts := DefaultOptions()
	opts.SiblingMerge = false
	p, err := NewFromHTML(html, opts)
	if err != nil {
		t.Fatalf("NewFromHTML: %v", err)
	}

	nodes := p.grabArticleNodes(p.doc.Find("body"))
	if len(nodes) != 1 {
		t.Fatalf("expected a single node, got %d", len(nodes))
	}
	for _, attr := range nodes[0].Attr {
		if attr.Key == "id" {
			if attr.Val != "first" {
				t.Errorf("tie broke to %q, want the earlier node", attr.Val)
			}
			return
		}
	}
	t.Error("selected node has no id attribute")
}

func TestScoreAccumulation(t *testing.T) {
	prose := strings.Repeat("Clause one, clause two, clause three keep scores climbing. ", 3)
	html := `<html><body><div id="wrap"><p>` + prose + `</p><p>` + prose + `</p></div></body></html>`

	p, err := NewFromHTML(html, DefaultOptions())
	if err != nil {
		t.Fatalf("NewFromHTML: %v", err)
	}
	body := p.doc.Find("body")
	nodes := p.grabArticleNodes(body)
	if len(nodes) == 0 {
		t.Fatal("no nodes selected")
	}

	// The wrapper div must be a candidate, and its score must exceed what
	// a single paragraph contributes, because both children propagated up.
	wrap := p.doc.Find("#wrap").Get(0)
	c, ok := p.scores[wrap]
	if !ok {
		t.Fatal("wrapper was never scored")
	}
	single := baseContentScore + 6.0 + maxTextLengthBonus + divInitialScore
	if c.score <= single {
		t.Errorf("wrapper score %f should exceed one paragraph's contribution %f", c.score, single)
	}
}
