/*
Package textops extracts the main readable content (title and body text)
from raw HTML documents, filtering out navigation, advertisements, and
other boilerplate. It is designed for batch use over large scraped corpora:
the single-document pipeline is pure and stateless, and the batch entry
point fans it out over a worker pool while preserving input order.

Basic usage:

    import "github.com/dataforge/textops"

    ext := textops.New()

    // Single document. A nil result means the document had no extractable
    // content or fell below the minimum-length gate; it is not an error.
    if res := ext.ExtractText(htmlString); res != nil {
        fmt.Println(res.Title)
        fmt.Println(res.Text)
    }

    // Batch. The output is index-aligned with the input and always the
    // same length; failed documents yield nil entries.
    results := ext.ExtractTextBatch(htmlList)

Options follow the functional pattern:

    ext := textops.New(
        textops.WithMinTextLength(100),
        textops.WithWorkers(8),
        textops.WithContentDigests(true),
    )

Extraction never returns errors for malformed or low-quality documents.
Pages without an identifiable article region, such as login walls or empty
shells, are an expected and frequent outcome and surface as nil results.
*/
package textops
