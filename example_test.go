package textops_test

import (
	"fmt"

	"github.com/dataforge/textops"
)

const examplePage = `<html><head><title>Article Title</title></head><body><header><nav><ul><li><a href="#">Home</a></li><li><a href="#">About</a></li></ul></nav></header><main><article><h1>Article Title</h1><p>This is a test paragraph with enough text to be considered relevant content by the scoring algorithm. We need to ensure that this paragraph has sufficient length to be scored highly by the content extraction algorithm. The algorithm looks for blocks of text that appear to be the main content of the page, as opposed to navigation, headers, footers, or other ancillary content.</p><p>Adding another paragraph increases the content score for this article element, making it more likely to be identified as the main content of the page. The extraction engine is designed to pull the primary content from a webpage, ignoring elements that are likely to be navigation, ads, or other non-content features.</p></article></main><footer><p>Copyright 2026</p></footer></body></html>`

func ExampleNew() {
	// Create a new extractor with default options
	ext := textops.New()

	res := ext.ExtractText(examplePage)
	if res == nil {
		fmt.Println("no extractable content")
		return
	}

	fmt.Printf("Title: %s\n", res.Title)
	// Output: Title: Article Title
}

func ExampleWithContentDigests() {
	// Create a new extractor with content digests enabled
	ext := textops.New(
		textops.WithContentDigests(true),
	)

	res := ext.ExtractText(examplePage)
	if res == nil {
		fmt.Println("no extractable content")
		return
	}

	// The digest is a stable hash of the extracted text
	fmt.Printf("Has digest: %v\n", len(res.Digest) > 0)
	// Output: Has digest: true
}

func ExampleExtractor_ExtractTextBatch() {
	// Batch extraction keeps results index-aligned with the inputs;
	// documents without extractable content yield nil entries.
	ext := textops.New(textops.WithWorkers(2))

	results := ext.ExtractTextBatch([]string{examplePage, "<p>too short</p>"})

	fmt.Printf("Count: %d\n", len(results))
	fmt.Printf("First ok: %v\n", results[0] != nil)
	fmt.Printf("Second ok: %v\n", results[1] != nil)
	// Output:
	// Count: 2
	// First ok: true
	// Second ok: false
}
