// Package extractors locates document metadata, such as the title, that is
// read independently of the selected content region.
package extractors

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/dataforge/textops/internal/simplifiers"
)

// selectorScore pairs an XPath expression with a confidence score. Scores
// reflect how reliably the selector identifies the real title; the same
// string found by several selectors accumulates their scores.
type selectorScore struct {
	xpath string
	score int
}

// titleSelectors is ordered roughly by confidence. Explicit metadata in the
// head outranks heading patterns, and the bare <title> element is the last
// resort since it often carries site names and separators.
var titleSelectors = []selectorScore{
	{`//meta[@property="og:title"]/@content`, 6},
	{`//h1[@itemprop="headline"]`, 5},
	{`//h1[@class="entry-title"]`, 5},
	{`//meta[@name="twitter:title"]/@content`, 4},
	{`//meta[@property="twitter:title"]/@content`, 4},
	{`//h2[@itemprop="headline"]`, 3},
	{`//meta[@itemprop="headline"]/@content`, 3},
	{`//meta[@name="title"]/@content`, 2},
	{`//meta[@name="dcterms.title"]/@content`, 2},
	{`//header//h1`, 2},
	{`//article//h1`, 2},
	{`//h1`, 1},
	{`//head/title`, 1},
	{`//title`, 1},
}

// ExtractTitle derives a human-readable title for the document. It returns
// the highest-confidence candidate after whitespace normalization, or the
// empty string when nothing plausible exists. The result is never length
// filtered; short titles are legitimate.
func ExtractTitle(root *html.Node) string {
	if root == nil {
		return ""
	}

	scores := make(map[string]int)
	var order []string

	for _, sel := range titleSelectors {
		nodes, err := htmlquery.QueryAll(root, sel.xpath)
		if err != nil {
			continue
		}
		for _, node := range nodes {
			text := simplifiers.NormalizeText(htmlquery.InnerText(node))
			if text == "" {
				continue
			}
			if _, seen := scores[text]; !seen {
				order = append(order, text)
			}
			scores[text] += sel.score
		}
	}

	// Titles that contain one another are usually the same headline with
	// and without site decoration; fold the longer variant's score into
	// the shorter one.
	for _, a := range order {
		for _, b := range order {
			if a != b && strings.Contains(b, a) {
				scores[a] += scores[b]
			}
		}
	}

	var best string
	var bestScore int
	for _, title := range order {
		if scores[title] > bestScore {
			best = title
			bestScore = scores[title]
		}
	}
	return best
}
