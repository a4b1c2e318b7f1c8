package search

import "github.com/tsawler/docsearch/model"

// Index is a cyclic cursor over the global match list. Next and Previous
// wrap around at either end, and each move reports whether it landed on a
// page other than the one the index believes is visible, so the caller can
// scroll the viewer.
//
// Index is not safe for concurrent use; the engine serializes access.
type Index struct {
	matches []model.Match
	current int // index into matches, -1 when empty

	// visiblePage is the page the host last reported on screen. Moves
	// compare against it to decide whether navigation is needed.
	visiblePage int
}

// Move describes the outcome of a cursor movement.
type Move struct {
	Match       model.Match
	PageChanged bool // true when the viewer should scroll to Match.Page
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{current: -1}
}

// Reset replaces the match list. The cursor moves to the first match, or
// to none when the list is empty.
func (ix *Index) Reset(matches []model.Match) {
	ix.matches = matches
	if len(matches) == 0 {
		ix.current = -1
		return
	}
	ix.current = 0
}

// Len returns the number of matches.
func (ix *Index) Len() int {
	return len(ix.matches)
}

// Ordinal returns the current cursor position, or -1 when there is none.
func (ix *Index) Ordinal() int {
	return ix.current
}

// Current returns the match under the cursor.
func (ix *Index) Current() (model.Match, bool) {
	if ix.current < 0 {
		return model.Match{}, false
	}
	return ix.matches[ix.current], true
}

// Matches returns the full match list in reading order.
func (ix *Index) Matches() []model.Match {
	return ix.matches
}

// SetVisiblePage records which page the host currently displays. Moves
// emit PageChanged relative to this page, so a host that lets the user
// scroll freely between navigations still gets correct scroll requests.
func (ix *Index) SetVisiblePage(page int) {
	ix.visiblePage = page
}

// Next advances the cursor, wrapping from the last match to the first.
// It reports false when there are no matches.
func (ix *Index) Next() (Move, bool) {
	return ix.step(1)
}

// Previous retreats the cursor, wrapping from the first match to the last.
// It reports false when there are no matches.
func (ix *Index) Previous() (Move, bool) {
	return ix.step(-1)
}

func (ix *Index) step(delta int) (Move, bool) {
	n := len(ix.matches)
	if n == 0 {
		return Move{}, false
	}

	ix.current = (ix.current + delta + n) % n
	match := ix.matches[ix.current]

	changed := match.Page != ix.visiblePage
	ix.visiblePage = match.Page

	return Move{Match: match, PageChanged: changed}, true
}
