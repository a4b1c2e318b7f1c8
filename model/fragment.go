package model

// TextFragment represents one positioned run of text on a page.
//
// X and Y are the fragment's origin in page-description coordinates
// (bottom-left origin, un-scaled page space). Width is the advance width of
// the run; FontSize is the vertical scale magnitude of the positioning
// transform. Either may be zero when the extraction source could not report
// it; the geometry resolver substitutes fixed fallbacks in that case.
//
// Fragments are immutable once extracted and are owned by the page text
// record they were extracted into.
type TextFragment struct {
	Text     string
	X, Y     float64
	Width    float64
	FontSize float64
	Matrix   Matrix // Positioning transform the fragment was placed with
}

// NewFragment builds a fragment positioned by a transform. The origin is
// the transform's translation and FontSize its vertical scale magnitude.
func NewFragment(text string, m Matrix, width float64) TextFragment {
	return TextFragment{
		Text:     text,
		X:        m[4],
		Y:        m[5],
		Width:    width,
		FontSize: m.VerticalScale(),
		Matrix:   m,
	}
}
