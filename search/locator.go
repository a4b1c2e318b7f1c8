package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docsearch/model"
	"github.com/tsawler/docsearch/pagetext"
)

// FindMatches scans the given page records, in the order supplied, for
// every case-insensitive occurrence of query and returns the global,
// reading-order match list. Callers pass records in ascending page order so
// that ordinals increase in reading order.
//
// The query is NFC-normalized and trimmed; a trimmed-empty query yields no
// matches. Matching is performed on lowercase-folded runes, but the text
// stored on each match is taken verbatim from the original-case page text.
// The scan resumes one rune after each hit, so occurrences may overlap.
//
// A candidate occurrence that maps to zero fragments is rejected rather
// than retained, so every returned match carries at least one rectangle.
func FindMatches(query string, records []*pagetext.Record) []model.Match {
	query = strings.TrimSpace(norm.NFC.String(query))
	if query == "" {
		return nil
	}

	needle := foldRunes([]rune(query))

	var matches []model.Match
	ordinal := 0

	for _, rec := range records {
		if rec == nil || len(rec.Runes) == 0 {
			continue
		}

		haystack := foldRunes(rec.Runes)

		for i := 0; i+len(needle) <= len(haystack); i++ {
			if !runesHaveAt(haystack, needle, i) {
				continue
			}

			rects := spanRects(rec, i, i+len(needle))
			if len(rects) == 0 {
				continue
			}

			matches = append(matches, model.Match{
				Page:    rec.Page,
				Ordinal: ordinal,
				Text:    string(rec.Runes[i : i+len(needle)]),
				Rects:   rects,
			})
			ordinal++
		}
	}

	return matches
}

// spanRects resolves one rectangle per fragment whose rune interval
// intersects [start, end), in fragment order.
func spanRects(rec *pagetext.Record, start, end int) []model.Rect {
	var rects []model.Rect
	for _, frag := range rec.FragmentsInRange(start, end) {
		rects = append(rects, ResolveRect(frag, rec.Height))
	}
	return rects
}

// foldRunes lowercases runes one by one with the locale-independent Unicode
// mapping. The mapping is 1:1 by construction, so folded offsets line up
// exactly with offsets into the original runes; string-level folding cannot
// guarantee that (e.g. İ lowercases to two runes).
func foldRunes(rs []rune) []rune {
	folded := make([]rune, len(rs))
	for i, r := range rs {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

// runesHaveAt reports whether needle occurs in haystack at offset i.
func runesHaveAt(haystack, needle []rune, i int) bool {
	for j, r := range needle {
		if haystack[i+j] != r {
			return false
		}
	}
	return true
}
