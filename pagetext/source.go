package pagetext

import (
	"context"
	"fmt"

	"github.com/tsawler/docsearch/model"
)

// Source provides access to a paginated document's positioned text.
// Implementations must return fragments in reading order; each fragment
// must carry enough positioning data to derive its origin, width, and a
// vertical scale magnitude.
//
// PageFragments may suspend (e.g. while a renderer extracts the page) and
// must honor context cancellation.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)

	// PageSize returns the un-scaled width and height of a page (1-indexed).
	PageSize(page int) (width, height float64, err error)

	// PageFragments extracts the positioned text fragments of a page
	// (1-indexed) in reading order.
	PageFragments(ctx context.Context, page int) ([]model.TextFragment, error)
}

// ExtractionError reports that a single page's text could not be obtained
// or was malformed. It is isolated to that page: the search continues
// across the remaining pages, and the failed page is treated as having no
// matches.
type ExtractionError struct {
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
