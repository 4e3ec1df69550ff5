package textops

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExtractTextBatch extracts every document in the list independently, using
// a fixed-size worker pool. Results land in a preallocated slice at their
// input index, so output order is deterministic regardless of which worker
// finishes first. Workers write to disjoint slots and share nothing else,
// so no locking is needed.
func (e *textExtractor) ExtractTextBatch(htmls []string) []*Result {
	results := make([]*Result, len(htmls))
	if len(htmls) == 0 {
		return results
	}

	workers := e.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, html := range htmls {
		i, html := i, html
		g.Go(func() error {
			results[i] = e.extractOne(html)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
