package readability

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dataforge/textops/internal/simplifiers"
)

// skippedTags never contribute text: script-like content, embedded media
// shells, form controls, and structural boilerplate that survives into a
// body fallback.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"svg":      true,
	"nav":      true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"button":   true,
	"input":    true,
	"textarea": true,
	"select":   true,
	"head":     true,
}

// blockTags delimit text blocks in the serialized output. Text inside a
// block is joined with spaces; blocks are joined with newlines.
var blockTags = map[string]bool{
	"address":    true,
	"article":    true,
	"blockquote": true,
	"dd":         true,
	"div":        true,
	"dl":         true,
	"dt":         true,
	"fieldset":   true,
	"figcaption": true,
	"figure":     true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"header":     true,
	"hr":         true,
	"li":         true,
	"main":       true,
	"ol":         true,
	"p":          true,
	"pre":        true,
	"section":    true,
	"table":      true,
	"td":         true,
	"th":         true,
	"tr":         true,
	"ul":         true,
	"br":         true,
}

// serializeText flattens the selected region into readable plain text:
// noise elements and hidden nodes are dropped, whitespace is normalized per
// block, and blocks are emitted in document order separated by newlines.
// Empty wrappers vanish because they produce no block.
func serializeText(nodes []*html.Node) string {
	var blocks []string
	var current strings.Builder

	flush := func() {
		if text := simplifiers.NormalizeText(current.String()); text != "" {
			blocks = append(blocks, text)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			current.WriteString(n.Data)
			return
		case html.ElementNode:
		default:
			return
		}

		name := strings.ToLower(n.Data)
		if skippedTags[name] || !isNodeVisible(n) {
			return
		}

		isBlock := blockTags[name]
		if isBlock {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if isBlock {
			flush()
		}
	}

	for _, n := range nodes {
		walk(n)
		flush()
	}

	return strings.Join(blocks, "\n")
}

// nodeText returns the raw concatenated text of a node's subtree, skipping
// the same noise elements as the serializer.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type != html.ElementNode || skippedTags[strings.ToLower(n.Data)] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
