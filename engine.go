package docsearch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/docsearch/model"
	"github.com/tsawler/docsearch/pagetext"
	"github.com/tsawler/docsearch/search"
)

// Engine is one document search session: it owns the per-page text cache,
// the current match list, and the navigation cursor, and notifies the host
// when the highlight set changes or the viewer should scroll.
//
// All methods are safe for concurrent use. Search execution itself is
// never concurrent with itself: each SetQuery supersedes any pending or
// in-flight search, and a superseded search's results are discarded before
// they touch session state.
type Engine struct {
	opts  Options
	cache *pagetext.Cache

	mu       sync.Mutex
	index    *search.Index
	query    string
	warnings []Warning

	// gen identifies the latest query; results are committed only if the
	// issuing generation is still current.
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc

	onHighlights func([]model.HighlightRect)
	onNavigate   func(page int)
}

func newEngine(src pagetext.Source, opts Options) *Engine {
	return &Engine{
		opts:  opts,
		cache: pagetext.NewCache(src),
		index: search.NewIndex(),
	}
}

// OnHighlights registers the callback invoked whenever the highlight set
// changes: new query results, cursor movement, or close (which delivers an
// empty set). The callback receives the full set; filtering to the page on
// screen and scaling by zoom are up to the host.
func (e *Engine) OnHighlights(fn func([]model.HighlightRect)) {
	e.mu.Lock()
	e.onHighlights = fn
	e.mu.Unlock()
}

// OnNavigate registers the callback invoked when match navigation lands on
// a page other than the one currently visible.
func (e *Engine) OnNavigate(fn func(page int)) {
	e.mu.Lock()
	e.onNavigate = fn
	e.mu.Unlock()
}

// SetQuery updates the query and schedules a search after the debounce
// interval. Each call supersedes any pending or in-flight search. A
// trimmed-empty query clears matches, cursor, and highlights immediately.
func (e *Engine) SetQuery(text string) {
	e.mu.Lock()

	e.query = text
	e.gen++
	gen := e.gen
	e.stopPendingLocked()

	if strings.TrimSpace(text) == "" {
		e.index.Reset(nil)
		e.warnings = nil
		fn := e.onHighlights
		e.mu.Unlock()

		if fn != nil {
			fn(nil)
		}
		return
	}

	e.timer = time.AfterFunc(e.opts.DebounceInterval, func() {
		e.run(text, gen)
	})
	e.mu.Unlock()
}

// Search runs a search for query immediately, bypassing the debounce, and
// commits the results to the session (superseding any pending search). It
// returns the matches in reading order and a warning for every page whose
// extraction failed; those pages contribute no matches, and the search
// continues across the rest of the document.
func (e *Engine) Search(ctx context.Context, query string) ([]model.Match, []Warning, error) {
	e.mu.Lock()
	e.query = query
	e.gen++
	gen := e.gen
	e.stopPendingLocked()
	e.mu.Unlock()

	if e.opts.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.SearchTimeout)
		defer cancel()
	}

	matches, warnings, err := e.collect(ctx, query)
	if err != nil {
		return nil, warnings, err
	}

	e.commit(gen, matches, warnings)
	return matches, warnings, nil
}

// NextMatch advances the cursor to the next match, wrapping from the last
// to the first. It refreshes highlights and, when the match lives on a
// page other than the visible one, requests navigation first.
func (e *Engine) NextMatch() {
	e.step((*search.Index).Next)
}

// PreviousMatch retreats the cursor to the previous match, wrapping from
// the first to the last. It refreshes highlights and, when the match lives
// on a page other than the visible one, requests navigation first.
func (e *Engine) PreviousMatch() {
	e.step((*search.Index).Previous)
}

// SetVisiblePage tells the engine which page the viewer currently shows,
// so cross-page navigation is computed against what the user actually
// sees. Hosts should call it when the user scrolls.
func (e *Engine) SetVisiblePage(page int) {
	e.mu.Lock()
	e.index.SetVisiblePage(page)
	e.mu.Unlock()
}

// InvalidateDocument drops all cached page text. Call it when the document
// content changes (pages rotated, deleted, edited); the next search
// re-extracts every page it touches.
func (e *Engine) InvalidateDocument() {
	e.cache.Invalidate()
}

// Close ends the session: it cancels any pending or in-flight search,
// clears query, matches, and cursor, and emits an empty highlight set.
// The engine may be reused afterwards by setting a new query.
func (e *Engine) Close() {
	e.mu.Lock()
	e.gen++
	e.stopPendingLocked()
	e.query = ""
	e.warnings = nil
	e.index.Reset(nil)
	fn := e.onHighlights
	e.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}

// Query returns the most recently set query text.
func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// Matches returns the current match list in reading order. The returned
// slice is shared session state; treat it as read-only.
func (e *Engine) Matches() []model.Match {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.Matches()
}

// CurrentMatch returns the match under the cursor, if any.
func (e *Engine) CurrentMatch() (model.Match, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.Current()
}

// CurrentOrdinal returns the cursor position in the match list, or -1 when
// there is no current match.
func (e *Engine) CurrentOrdinal() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.Ordinal()
}

// Warnings returns the warnings from the most recent completed search.
func (e *Engine) Warnings() []Warning {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Warning(nil), e.warnings...)
}

// Highlights returns the current highlight projection. It is the same set
// delivered through OnHighlights.
func (e *Engine) Highlights() []model.HighlightRect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return search.Project(e.index.Matches(), e.index.Ordinal())
}

// stopPendingLocked cancels the debounce timer and any in-flight search.
// Callers must hold e.mu.
func (e *Engine) stopPendingLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// run executes a debounced search for the given generation.
func (e *Engine) run(query string, gen uint64) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if e.opts.SearchTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, e.opts.SearchTimeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	e.cancel = cancel
	e.mu.Unlock()

	matches, warnings, err := e.collect(ctx, query)
	cancel()
	if err != nil {
		// The whole document was unreachable (or the session was torn
		// down mid-flight); nothing to commit.
		return
	}

	e.commit(gen, matches, warnings)
}

// collect extracts pages in ascending page order and scans them. Pages are
// awaited one at a time so ordinals are deterministic regardless of how
// fast individual extractions resolve. A failed page becomes a warning and
// a nil record; only a document-level failure or cancellation aborts.
func (e *Engine) collect(ctx context.Context, query string) ([]model.Match, []Warning, error) {
	pageCount, err := e.cache.PageCount()
	if err != nil {
		return nil, nil, err
	}

	records := make([]*pagetext.Record, 0, pageCount)
	var warnings []Warning

	for page := 1; page <= pageCount; page++ {
		rec, err := e.cache.PageText(ctx, page)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}

			var extErr *pagetext.ExtractionError
			if errors.As(err, &extErr) {
				warnings = append(warnings, Warning{Page: extErr.Page, Message: extErr.Err.Error()})
			} else {
				warnings = append(warnings, Warning{Page: page, Message: err.Error()})
			}
			records = append(records, nil)
			continue
		}
		records = append(records, rec)
	}

	return search.FindMatches(query, records), warnings, nil
}

// commit applies search results to session state if the issuing generation
// is still current, then emits the new highlight set.
func (e *Engine) commit(gen uint64, matches []model.Match, warnings []Warning) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}

	e.index.Reset(matches)
	e.warnings = warnings
	highlights := search.Project(matches, e.index.Ordinal())
	fn := e.onHighlights
	e.mu.Unlock()

	if fn != nil {
		fn(highlights)
	}
}

// step performs one cursor movement and delivers the resulting callbacks:
// navigation first (when the page changed), then the highlight refresh.
func (e *Engine) step(move func(*search.Index) (search.Move, bool)) {
	e.mu.Lock()
	mv, ok := move(e.index)
	if !ok {
		e.mu.Unlock()
		return
	}

	highlights := search.Project(e.index.Matches(), e.index.Ordinal())
	onNavigate := e.onNavigate
	onHighlights := e.onHighlights
	e.mu.Unlock()

	if mv.PageChanged && onNavigate != nil {
		onNavigate(mv.Match.Page)
	}
	if onHighlights != nil {
		onHighlights(highlights)
	}
}
