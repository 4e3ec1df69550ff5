package textops

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/dataforge/textops/internal/readability"
)

// Version information for the textops library.
const (
	Version = "0.1.0"
	Name    = "textops"
)

// Result is the outcome of a successful extraction. It is immutable once
// returned. Length is always the byte length of Text.
type Result struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Length int    `json:"length"`
	Digest string `json:"digest,omitempty"`
}

// Extractor extracts readable content from HTML documents. Implementations
// are safe for concurrent use; each document is processed on its own tree
// with no shared mutable state.
type Extractor interface {
	// ExtractText extracts the title and body text of a single document.
	// It returns nil when the document cannot be parsed, has no
	// identifiable content region, or falls below the minimum-length gate.
	ExtractText(html string) *Result

	// ExtractTextBatch applies ExtractText to every document in the list
	// independently and in parallel. The returned slice has the same
	// length as the input and is index-aligned with it; failed documents
	// yield nil entries without affecting their neighbors.
	ExtractTextBatch(htmls []string) []*Result
}

// Options configures extraction.
type Options struct {
	MinTextLength  int  // quality gate: reject body text shorter than this many bytes
	RetryThreshold int  // relax scoring heuristics below this text length
	Workers        int  // batch parallelism; <=0 means GOMAXPROCS
	ContentDigests bool // populate Result.Digest with a content hash
	SiblingMerge   bool // absorb well-scored siblings of the top candidate
}

// DefaultOptions returns the default extraction options: a 50-byte content
// gate, sibling merging on, digests off, and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		MinTextLength:  readability.DefaultMinTextLength,
		RetryThreshold: readability.DefaultRetryThreshold,
		Workers:        0,
		ContentDigests: false,
		SiblingMerge:   true,
	}
}

// Option modifies Options, following the functional options pattern.
type Option func(*Options)

// WithMinTextLength sets the minimum byte length of body text for an
// extraction to count as successful. Documents below the gate yield nil.
func WithMinTextLength(n int) Option {
	return func(o *Options) {
		o.MinTextLength = n
	}
}

// WithRetryThreshold sets the text length below which the scorer retries
// with relaxed heuristics before falling back to the document body.
func WithRetryThreshold(n int) Option {
	return func(o *Options) {
		o.RetryThreshold = n
	}
}

// WithWorkers sets the number of parallel workers used by
// ExtractTextBatch. Values <= 0 select one worker per available CPU.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithContentDigests enables a content hash on each result, useful for
// downstream deduplication of extracted articles.
func WithContentDigests(enable bool) Option {
	return func(o *Options) {
		o.ContentDigests = enable
	}
}

// WithSiblingMerge controls whether siblings of the top candidate that
// score close to it are absorbed into the extracted region. Disabling it
// selects the single top-scoring subtree only.
func WithSiblingMerge(enable bool) Option {
	return func(o *Options) {
		o.SiblingMerge = enable
	}
}

// textExtractor is the concrete Extractor.
type textExtractor struct {
	opts Options
}

// New creates an Extractor with the provided options.
//
// Example:
//
//	ext := textops.New(
//	    textops.WithMinTextLength(100),
//	    textops.WithContentDigests(true),
//	)
func New(opts ...Option) Extractor {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &textExtractor{opts: options}
}

// ExtractText extracts readable content from a single HTML string.
func (e *textExtractor) ExtractText(html string) *Result {
	return e.extractOne(html)
}

// extractOne runs the per-document pipeline. Every failure mode, including
// a panic in the engine, is absorbed into a nil result so one bad document
// can never take down a batch.
func (e *textExtractor) extractOne(html string) (res *Result) {
	defer func() {
		if recover() != nil {
			res = nil
		}
	}()

	parser, err := readability.NewFromHTML(html, readability.Options{
		RetryThreshold: e.opts.RetryThreshold,
		SiblingMerge:   e.opts.SiblingMerge,
	})
	if err != nil {
		return nil
	}

	article, err := parser.Parse()
	if err != nil {
		return nil
	}

	// Quality gate. Length is computed on the exact text returned, so the
	// Length field always matches the text's own encoded size.
	text := strings.TrimSpace(article.TextContent)
	if text == "" || len(text) < e.opts.MinTextLength {
		return nil
	}

	result := &Result{
		Title:  article.Title,
		Text:   text,
		Length: len(text),
	}
	if e.opts.ContentDigests {
		result.Digest = fmt.Sprintf("%016x", xxhash.Sum64String(text))
	}
	return result
}
