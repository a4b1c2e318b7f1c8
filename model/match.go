package model

// Match represents one occurrence of a query in the document.
type Match struct {
	Page    int    // 1-indexed page number
	Ordinal int    // 0-based position in the global, reading-order match list
	Text    string // Matched substring, original case
	Rects   []Rect // One rectangle per contributing fragment, page-space
}

// HighlightRect is one renderable highlight rectangle: a page-space
// rectangle tagged with its page and whether it belongs to the currently
// selected match. The host filters by visible page and applies zoom.
type HighlightRect struct {
	Rect
	Page    int
	Current bool
}
