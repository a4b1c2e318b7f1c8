// Package search implements query matching over cached page text and the
// navigation state that drives highlight rendering.
//
// # Matching
//
// [FindMatches] scans the concatenated text of each page for every
// occurrence of a query, case-insensitively, and maps each occurrence back
// to the fragments it spans:
//
//	matches := search.FindMatches("chapter", records)
//
// Matching is rune-based. The scan resumes one rune after each hit, so
// occurrences may overlap ("aa" finds two hits in "aaa"). A match that
// crosses a fragment boundary yields one [model.Match] with one rectangle
// per spanned fragment.
//
// # Geometry
//
// [ResolveRect] is the single place where the bottom-left page-description
// coordinate system is flipped into top-left viewer coordinates. Every
// rectangle the package emits is already in viewer coordinates.
//
// # Navigation
//
// [Index] is a cyclic cursor over the global match list. Next and Previous
// wrap around and report, as data, whether the move landed on a different
// page than the one currently visible; the caller decides how to scroll.
//
// # Highlights
//
// [Project] derives the renderable highlight set from a match list and the
// current cursor position. It is a pure function; the host filters by
// visible page and applies zoom.
package search
