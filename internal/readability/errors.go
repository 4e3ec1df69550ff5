package readability

import "errors"

// Sentinel errors returned by the parser. Callers are expected to treat all
// of them as "no result for this document" rather than as faults.
var (
	// ErrNoDocument indicates the input could not be parsed into a tree.
	ErrNoDocument = errors.New("readability: no parseable document")

	// ErrNoContent indicates no content region could be identified.
	ErrNoContent = errors.New("readability: no extractable content")
)
