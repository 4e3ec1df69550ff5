package readability

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// scoreElement computes the content score of one text-bearing element and
// propagates it, with decay, up the ancestor chain.
func (p *Parser) scoreElement(elem *goquery.Selection) {
	if elem.Parent().Length() == 0 {
		return
	}

	name := goquery.NodeName(elem)
	if name == "div" && hasChildBlockElement(elem) {
		// Divs count as paragraphs only when they hold nothing but inline
		// content; structural divs are scored through propagation instead.
		return
	}

	text := getInnerText(elem, true)
	if len(text) < minScoreTextLength {
		return
	}

	score := baseContentScore
	score += float64(strings.Count(text, ",")) * commaBonus
	score += math.Min(float64(len(text))/textLengthDivisor, maxTextLengthBonus)
	if name == "li" {
		score *= listItemScoreFactor
	}

	for level, ancestor := range p.ancestors(elem) {
		divider := 1.0
		switch {
		case level == 1:
			divider = ancestorDividerL1
		case level > 1:
			divider = float64(level) * ancestorDividerDeepMul
		}
		p.candidateFor(ancestor).score += score / divider
	}
}

// ancestors returns the chain of scorable ancestors of elem, nearest first,
// up to scoreDepth levels. The body and anything above it never become
// candidates.
func (p *Parser) ancestors(elem *goquery.Selection) []*goquery.Selection {
	var chain []*goquery.Selection
	node := elem.Parent()
	for node.Length() > 0 && len(chain) < scoreDepth {
		switch goquery.NodeName(node) {
		case "body", "html", "#document":
			return chain
		}
		chain = append(chain, node)
		node = node.Parent()
	}
	return chain
}

// candidateFor returns the score-table entry for a node, creating and
// initializing it on first sight. Creation order is retained so that ties
// resolve to the node appearing earliest in the document.
func (p *Parser) candidateFor(s *goquery.Selection) *candidate {
	node := s.Get(0)
	if c, ok := p.scores[node]; ok {
		return c
	}

	c := &candidate{
		sel:   s,
		node:  node,
		score: initialScore(goquery.NodeName(s)),
	}
	if p.flags&flagWeightClasses != 0 {
		c.score += getClassWeight(s)
	}

	p.scores[node] = c
	p.order = append(p.order, c)
	return c
}

// initialScore seeds a candidate by tag semantics: content containers start
// ahead, list and form containers behind, headings well behind.
func initialScore(name string) float64 {
	switch name {
	case "div", "article", "section", "main":
		return divInitialScore
	case "pre", "td", "blockquote":
		return blockInitialScore
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return listInitialScore
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return headingInitialScore
	}
	return 0
}

// topCandidate returns the best-scoring candidate after the link-density
// penalty, or nil when nothing scored. A strict comparison keeps the
// earliest node on ties, making selection deterministic.
func (p *Parser) topCandidate() (*candidate, float64) {
	var top *candidate
	var topScore float64

	for _, c := range p.order {
		adjusted := c.score * (1.0 - getLinkDensity(c.sel))
		if top == nil || adjusted > topScore {
			top = c
			topScore = adjusted
		}
	}
	return top, topScore
}

// mergeSiblings widens the selected region with siblings of the top
// candidate that score close to it, or that read like prose paragraphs.
// This recovers articles artificially split across adjacent blocks.
func (p *Parser) mergeSiblings(top *candidate) []*html.Node {
	parent := top.sel.Parent()
	if parent.Length() == 0 {
		return []*html.Node{top.node}
	}

	threshold := math.Max(minSiblingScore, top.score*siblingScoreFraction)
	topClass, _ := top.sel.Attr("class")

	var nodes []*html.Node
	parent.Children().Each(func(_ int, sibling *goquery.Selection) {
		node := sibling.Get(0)
		if node == top.node {
			nodes = append(nodes, node)
			return
		}

		var siblingScore float64
		if c, ok := p.scores[node]; ok {
			siblingScore = c.score
		}
		if topClass != "" {
			if class, ok := sibling.Attr("class"); ok && class == topClass {
				siblingScore += top.score * sameClassSiblingBonus
			}
		}

		if siblingScore >= threshold {
			nodes = append(nodes, node)
			return
		}

		if goquery.NodeName(sibling) == "p" {
			text := getInnerText(sibling, true)
			density := getLinkDensity(sibling)
			longProse := len(text) > minSiblingParagraphLength && density < siblingLinkDensityMax
			shortProse := len(text) > 0 && len(text) <= minSiblingParagraphLength &&
				density == 0 && strings.Contains(text, ". ")
			if longProse || shortProse {
				nodes = append(nodes, node)
			}
		}
	})

	if len(nodes) == 0 {
		nodes = []*html.Node{top.node}
	}
	return nodes
}
