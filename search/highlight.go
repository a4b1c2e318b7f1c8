package search

import "github.com/tsawler/docsearch/model"

// Project derives the renderable highlight set from a match list: one
// [model.HighlightRect] per match rectangle, in match order, with Current
// set exactly for rectangles belonging to the match at currentOrdinal. A
// negative currentOrdinal marks no match as current.
//
// Project is a pure function of its inputs. Filtering to the page on
// screen and scaling by the active zoom factor are presentation concerns
// left to the host.
func Project(matches []model.Match, currentOrdinal int) []model.HighlightRect {
	if len(matches) == 0 {
		return nil
	}

	highlights := make([]model.HighlightRect, 0, len(matches))
	for _, m := range matches {
		current := m.Ordinal == currentOrdinal && currentOrdinal >= 0
		for _, r := range m.Rects {
			highlights = append(highlights, model.HighlightRect{
				Rect:    r,
				Page:    m.Page,
				Current: current,
			})
		}
	}

	return highlights
}
