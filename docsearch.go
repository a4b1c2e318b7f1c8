// Package docsearch locates text in paginated documents and maps each
// occurrence to page-relative highlight rectangles with ordered,
// wrap-around navigation between occurrences.
//
// Basic usage:
//
//	engine := docsearch.New(source)
//	engine.OnHighlights(func(hl []model.HighlightRect) {
//	    // render hl, filtered to the visible page and scaled by zoom
//	})
//	engine.OnNavigate(func(page int) {
//	    // scroll the viewer to page
//	})
//	engine.SetQuery("chapter")   // debounced
//	engine.NextMatch()
//
// For batch hosts and tests, the synchronous form skips the debounce:
//
//	matches, warnings, err := engine.Search(ctx, "chapter")
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docsearch.FormatWarnings(warnings))
//	}
//
// The document is reached through the pagetext.Source interface; the
// htmlsource and ocr packages provide ready-made sources, or the host can
// implement its own against a rendering library.
package docsearch

import (
	"context"

	"github.com/tsawler/docsearch/model"
	"github.com/tsawler/docsearch/pagetext"
)

// New creates a search engine over the given document source with default
// options.
//
// Example:
//
//	engine := docsearch.New(source)
//	defer engine.Close()
func New(src pagetext.Source) *Engine {
	return NewWithOptions(src, defaultOptions())
}

// NewWithOptions creates a search engine with custom options. Zero-valued
// fields fall back to their defaults.
//
// Example:
//
//	engine := docsearch.NewWithOptions(source, docsearch.Options{
//	    DebounceInterval: 150 * time.Millisecond,
//	})
func NewWithOptions(src pagetext.Source, opts Options) *Engine {
	return newEngine(src, opts.withDefaults())
}

// Find runs a one-shot search over a document source without keeping a
// session: all occurrences of query, in reading order, plus warnings for
// pages that failed extraction.
//
// Example:
//
//	matches, warnings, err := docsearch.Find(ctx, source, "chapter")
func Find(ctx context.Context, src pagetext.Source, query string) ([]model.Match, []Warning, error) {
	engine := New(src)
	defer engine.Close()
	return engine.Search(ctx, query)
}
