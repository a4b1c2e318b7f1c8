package search

import "github.com/tsawler/docsearch/model"

const (
	// fallbackHeight is used when a fragment's vertical scale magnitude is
	// zero or unavailable.
	fallbackHeight = 12.0

	// fallbackWidth is used when extraction did not report a fragment width.
	fallbackWidth = 50.0
)

// ResolveRect converts a fragment's position into a highlight rectangle in
// viewer coordinates (top-left origin, Y increasing downward).
//
// Fragment origins are page-description coordinates: measured from the
// page's bottom edge, at the text baseline. This function is the only seam
// where that convention is translated: the Y axis is flipped against
// pageHeight and the box is raised by its own height so it encloses the
// glyphs' visual extent rather than only the baseline.
func ResolveRect(frag model.TextFragment, pageHeight float64) model.Rect {
	height := frag.FontSize
	if height <= 0 {
		height = fallbackHeight
	}

	width := frag.Width
	if width <= 0 {
		width = fallbackWidth
	}

	return model.Rect{
		X:      frag.X,
		Y:      pageHeight - frag.Y - height,
		Width:  width,
		Height: height,
	}
}
