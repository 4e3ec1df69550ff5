package readability

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dataforge/textops/internal/extractors"
	"github.com/dataforge/textops/internal/simplifiers"
)

// Options configures a single parse.
type Options struct {
	// RetryThreshold is the minimum text length (bytes) a scoring pass must
	// produce before the parser stops relaxing heuristics and, ultimately,
	// falls back to the whole body.
	RetryThreshold int

	// SiblingMerge enables absorbing well-scored siblings of the top
	// candidate, recovering articles split across adjacent blocks.
	SiblingMerge bool
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		RetryThreshold: DefaultRetryThreshold,
		SiblingMerge:   true,
	}
}

// Article is the outcome of a successful parse. TextContent carries the
// cleaned plain text of the selected content region; Length is its size in
// bytes.
type Article struct {
	Title       string
	TextContent string
	Length      int
}

// Parser runs the scoring algorithm over a single parsed document. A Parser
// owns its document tree exclusively and must not be shared across
// goroutines; batch callers construct one Parser per input.
type Parser struct {
	doc   *goquery.Document
	opts  Options
	flags int

	// Score side table. Scores live next to, not on, the nodes so the tree
	// stays a plain DOM for the cleaning and serialization stages.
	scores map[*html.Node]*candidate
	order  []*candidate
}

// candidate pairs a scorable node with its accumulated content score.
type candidate struct {
	sel   *goquery.Selection
	node  *html.Node
	score float64
}

// NewFromHTML parses an HTML string and returns a Parser for it.
func NewFromHTML(rawHTML string, opts Options) (*Parser, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDocument, err)
	}
	return &Parser{
		doc:   doc,
		opts:  opts,
		flags: flagStripUnlikelys | flagWeightClasses,
	}, nil
}

// Parse runs the full pipeline: title extraction, document preparation,
// candidate scoring and selection, and plain-text serialization.
func (p *Parser) Parse() (*Article, error) {
	if p.doc == nil || p.doc.Selection.Length() == 0 {
		return nil, ErrNoDocument
	}

	// The title comes from the head and from heading patterns, so it must
	// be read before the destructive preparation passes.
	title := extractors.ExtractTitle(p.doc.Get(0))

	p.prepDocument()

	body := p.doc.Find("body")
	if body.Length() == 0 {
		return nil, ErrNoContent
	}

	nodes, text := p.grabArticle(body)
	if len(nodes) == 0 {
		return nil, ErrNoContent
	}

	if title == "" {
		title = firstHeadingText(nodes)
	}

	return &Article{
		Title:       title,
		TextContent: text,
		Length:      len(text),
	}, nil
}

// grabArticle selects the content region, retrying with relaxed heuristics
// when a pass produces too little text. The last resort is the body itself.
func (p *Parser) grabArticle(body *goquery.Selection) ([]*html.Node, string) {
	pageHTML, _ := body.Html()

	nodes := p.grabArticleNodes(body)
	text := serializeText(nodes)

	for len(text) < p.opts.RetryThreshold {
		switch {
		case p.flags&flagStripUnlikelys != 0:
			p.flags &^= flagStripUnlikelys
		case p.flags&flagWeightClasses != 0:
			p.flags &^= flagWeightClasses
		default:
			// Out of heuristics to relax. Restore the page and take the
			// whole body; the serializer still skips boilerplate tags.
			body.SetHtml(pageHTML)
			bodyNodes := []*html.Node{body.Get(0)}
			return bodyNodes, serializeText(bodyNodes)
		}

		body.SetHtml(pageHTML)
		nodes = p.grabArticleNodes(body)
		text = serializeText(nodes)
	}

	return nodes, text
}

// grabArticleNodes runs one scoring pass and returns the selected region in
// document order.
func (p *Parser) grabArticleNodes(body *goquery.Selection) []*html.Node {
	p.stripUnlikelyNodes(body)

	p.scores = make(map[*html.Node]*candidate)
	p.order = nil

	body.Find(tagsToScore).Each(func(_ int, elem *goquery.Selection) {
		p.scoreElement(elem)
	})

	top, topScore := p.topCandidate()
	if top == nil || topScore <= 0 {
		return []*html.Node{body.Get(0)}
	}

	if !p.opts.SiblingMerge {
		return []*html.Node{top.node}
	}
	return p.mergeSiblings(top)
}

// prepDocument removes markup that can never contribute to readable text.
func (p *Parser) prepDocument() {
	p.doc.Find("script, noscript, style, template").Remove()
}

// stripUnlikelyNodes removes hidden nodes, dialog overlays, and containers
// whose class/id mark them as boilerplate. Operates on the live tree, so it
// runs before any scoring.
func (p *Parser) stripUnlikelyNodes(body *goquery.Selection) {
	body.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node == nil {
			return
		}

		if !isNodeVisible(node) {
			s.Remove()
			return
		}

		if modal, ok := s.Attr("aria-modal"); ok && modal == "true" {
			if role, ok := s.Attr("role"); ok && role == "dialog" {
				s.Remove()
				return
			}
		}

		if p.flags&flagStripUnlikelys == 0 {
			return
		}

		name := goquery.NodeName(s)
		if name == "body" || name == "a" {
			return
		}

		if match := matchString(s); match != "" {
			if reUnlikelyCandidates.MatchString(match) && !reMaybeCandidate.MatchString(match) &&
				!hasAncestorTag(node, "table", "code") {
				s.Remove()
				return
			}
		}

		if role, ok := s.Attr("role"); ok && unlikelyRoles[role] {
			s.Remove()
		}
	})
}

// firstHeadingText returns the normalized text of the first heading inside
// the selected region, used as a title fallback.
func firstHeadingText(nodes []*html.Node) string {
	var find func(*html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h1", "h2", "h3":
				return simplifiers.NormalizeText(nodeText(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if text := find(c); text != "" {
				return text
			}
		}
		return ""
	}

	for _, n := range nodes {
		if text := find(n); text != "" {
			return text
		}
	}
	return ""
}
