package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// getInnerText returns the text content of a selection with surrounding
// whitespace trimmed and, optionally, inner runs of whitespace collapsed.
func getInnerText(s *goquery.Selection, normalizeSpaces bool) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(s.Text())
	if normalizeSpaces {
		text = strings.Join(strings.Fields(text), " ")
	}
	return text
}

// getLinkDensity computes the ratio of anchor text to total text within a
// node. Fragment-only links count at a reduced coefficient since they are
// usually in-page navigation rather than boilerplate link lists.
func getLinkDensity(s *goquery.Selection) float64 {
	textLength := len(getInnerText(s, true))
	if textLength == 0 {
		return 0
	}

	var linkLength float64
	s.Find("a").Each(func(_ int, link *goquery.Selection) {
		coefficient := 1.0
		if href, ok := link.Attr("href"); ok && reHashURL.MatchString(href) {
			coefficient = hashLinkCoefficient
		}
		linkLength += float64(len(getInnerText(link, true))) * coefficient
	})

	return linkLength / float64(textLength)
}

// getClassWeight scores a node by keyword hints in its class and id
// attributes. Patterns are substring matches, checked case-insensitively.
func getClassWeight(s *goquery.Selection) float64 {
	var weight float64

	if class, ok := s.Attr("class"); ok && class != "" {
		class = strings.ToLower(class)
		if reNegative.MatchString(class) {
			weight -= classWeight
		}
		if rePositive.MatchString(class) {
			weight += classWeight
		}
	}

	if id, ok := s.Attr("id"); ok && id != "" {
		id = strings.ToLower(id)
		if reNegative.MatchString(id) {
			weight -= classWeight
		}
		if rePositive.MatchString(id) {
			weight += classWeight
		}
	}

	return weight
}

// matchString concatenates the class and id attributes of a node, lowered,
// for matching against the keyword patterns.
func matchString(s *goquery.Selection) string {
	var parts []string
	if class, ok := s.Attr("class"); ok && class != "" {
		parts = append(parts, class)
	}
	if id, ok := s.Attr("id"); ok && id != "" {
		parts = append(parts, id)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// isNodeVisible reports whether a node would be rendered. Inline style
// parsing is deliberately shallow; only explicit hiding hints count.
func isNodeVisible(n *html.Node) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return false
		case "aria-hidden":
			if attr.Val == "true" {
				return false
			}
		case "style":
			style := strings.ReplaceAll(strings.ToLower(attr.Val), " ", "")
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return false
			}
		}
	}
	return true
}

// hasAncestorTag reports whether any ancestor of n is one of the given tags.
func hasAncestorTag(n *html.Node, tags ...string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		name := strings.ToLower(p.Data)
		for _, tag := range tags {
			if name == tag {
				return true
			}
		}
	}
	return false
}

// hasChildBlockElement reports whether the selection contains block-level
// descendants, which disqualifies a div from being scored as a paragraph.
func hasChildBlockElement(s *goquery.Selection) bool {
	return s.Find("blockquote, dl, div, img, ol, p, pre, table, ul, section, article, h1, h2, h3, h4, h5, h6").Length() > 0
}
