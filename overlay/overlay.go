// Package overlay composites search highlights onto rendered page images.
//
// It is an optional helper for hosts without their own overlay pipeline:
// given a page raster, the full highlight set, and a zoom factor, it
// produces a single image with translucent highlight boxes drawn over the
// page. Hosts with a real rendering surface will usually draw highlights
// themselves and only consume the rectangle geometry.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/docsearch/model"
)

// Highlight fills: translucent yellow for matches, translucent orange for
// the current match. Alpha-premultiplied, drawn with Over.
var (
	matchFill   = color.RGBA{R: 120, G: 120, B: 0, A: 120}
	currentFill = color.RGBA{R: 150, G: 75, B: 0, A: 150}
)

// Render scales a rendered page to the given zoom factor and draws every
// highlight belonging to pageNum on top of it. The page image is assumed
// to be rendered at one pixel per page unit (pageWidth x pageHeight);
// highlight rectangles are in page units and are scaled along with the
// raster. The current match is drawn in a distinct color.
func Render(page image.Image, pageWidth, pageHeight float64, highlights []model.HighlightRect, pageNum int, zoom float64) *image.RGBA {
	if zoom <= 0 {
		zoom = 1
	}

	outW := int(pageWidth*zoom + 0.5)
	outH := int(pageHeight*zoom + 0.5)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), page, page.Bounds(), draw.Src, nil)

	for _, hl := range highlights {
		if hl.Page != pageNum {
			continue
		}

		fill := matchFill
		if hl.Current {
			fill = currentFill
		}

		box := pixelRect(hl.Rect.Scale(zoom), outW, outH)
		if box.Empty() {
			continue
		}
		draw.Draw(out, box, &image.Uniform{C: fill}, image.Point{}, draw.Over)
	}

	return out
}

// pixelRect converts a zoomed rectangle to integer pixels, clamped to the
// output image.
func pixelRect(r model.Rect, w, h int) image.Rectangle {
	box := image.Rect(
		int(r.X+0.5),
		int(r.Y+0.5),
		int(r.Right()+0.5),
		int(r.Bottom()+0.5),
	)
	return box.Intersect(image.Rect(0, 0, w, h))
}
