// Package model provides the leaf data structures shared by the search
// engine: positioned text fragments, page-space geometry, and match results.
//
// All types in this package are plain values with no behavior beyond simple
// geometric helpers, making them safe to pass across package and goroutine
// boundaries.
//
// # Coordinate Spaces
//
// Fragment positions arrive in page-description coordinates: un-scaled
// page space with the origin at the bottom-left corner and Y increasing
// upward ([TextFragment.X], [TextFragment.Y]). Everything downstream of the
// geometry resolver works in viewer coordinates: top-left origin with Y
// increasing downward ([Rect]). The flip happens exactly once, in
// search.ResolveRect; no other component reasons about axis direction.
//
// # Fragments
//
// A [TextFragment] is one contiguous run of extracted text with its position,
// advance width, and the vertical scale magnitude of its positioning
// transform (exposed as FontSize). Fragments are immutable once extracted.
//
// # Matches
//
// A [Match] is one occurrence of a query in the document: the page it lives
// on, its 0-based ordinal in global reading order, the matched text in its
// original case, and one rectangle per fragment the occurrence spans. A
// [HighlightRect] is a rectangle tagged with its page and whether it belongs
// to the currently selected match.
package model
