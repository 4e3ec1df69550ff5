// Package readability implements the content-scoring algorithm used to find
// the main readable region of an HTML document. It walks the parsed tree,
// scores block-level containers by tag semantics, class/id hints, and text
// density, and selects the highest-scoring subtree for text extraction.
package readability

import "regexp"

// Flags controlling which heuristics are active during a scoring pass.
// A pass that yields too little text is retried with flags cleared one
// at a time before falling back to the document body.
const (
	flagStripUnlikelys = 0x1
	flagWeightClasses  = 0x2
)

// Scoring parameters.
const (
	// minScoreTextLength is the minimum direct text length for an element
	// to contribute any score at all.
	minScoreTextLength = 25

	// baseContentScore is the starting score of a text-bearing element.
	baseContentScore = 1.0

	// commaBonus is added for every comma-separated clause in the text.
	commaBonus = 1.0

	// textLengthDivisor and maxTextLengthBonus give longer blocks a
	// sub-linear bonus, capped so huge containers do not run away.
	textLengthDivisor  = 100.0
	maxTextLengthBonus = 3.0

	// listItemScoreFactor discounts the contribution of list items.
	listItemScoreFactor = 0.5

	// scoreDepth is how many ancestor levels receive propagated score.
	scoreDepth = 5

	// Ancestor score dividers: the parent receives the full contribution,
	// the grandparent half, and deeper ancestors level*3.
	ancestorDividerL1      = 2.0
	ancestorDividerDeepMul = 3.0

	// classWeight is the bonus/penalty for positive/negative id and class
	// keyword matches.
	classWeight = 25.0

	// Initial scores by tag kind, applied when a node first enters the
	// candidate table.
	divInitialScore     = 5.0
	blockInitialScore   = 3.0
	listInitialScore    = -3.0
	headingInitialScore = -5.0

	// Sibling merge thresholds: a sibling is absorbed when its score is at
	// least max(minSiblingScore, fraction of the top score).
	minSiblingScore       = 10.0
	siblingScoreFraction  = 0.2
	sameClassSiblingBonus = 0.2

	// Paragraph siblings below the score threshold are still absorbed when
	// they look like prose: long with few links, or short, link-free and
	// sentence-like.
	minSiblingParagraphLength = 80
	siblingLinkDensityMax     = 0.25

	// hashLinkCoefficient discounts in-page fragment links when computing
	// link density.
	hashLinkCoefficient = 0.3
)

// DefaultMinTextLength is the extraction gate: cleaned body text shorter
// than this (in bytes) is treated as a failed extraction.
const DefaultMinTextLength = 50

// DefaultRetryThreshold is the text length below which a scoring pass is
// considered unconvincing and retried with relaxed heuristics.
const DefaultRetryThreshold = 500

// tagsToScore are the element kinds that receive a direct content score.
// Everything else is scored only indirectly, through propagation.
const tagsToScore = "p, pre, td, blockquote, li, div"

// Class/id substring patterns, matched case-insensitively against the
// concatenated class and id attributes.
var (
	// reUnlikelyCandidates marks containers that are almost never article
	// content.
	reUnlikelyCandidates = regexp.MustCompile(`-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)

	// reMaybeCandidate rescues containers that match the unlikely pattern
	// but also carry a content-ish keyword.
	reMaybeCandidate = regexp.MustCompile(`and|article|body|column|content|main|shadow`)

	// rePositive and reNegative drive the class/id weight heuristic.
	rePositive = regexp.MustCompile(`article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	reNegative = regexp.MustCompile(`-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)

	// reHashURL recognizes in-page fragment links.
	reHashURL = regexp.MustCompile(`^#.+`)
)

// unlikelyRoles are ARIA roles that disqualify a node from scoring.
var unlikelyRoles = map[string]bool{
	"menu":          true,
	"menubar":       true,
	"complementary": true,
	"navigation":    true,
	"alert":         true,
	"alertdialog":   true,
	"dialog":        true,
}
