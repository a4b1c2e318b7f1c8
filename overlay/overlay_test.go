package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/tsawler/docsearch/model"
)

func whitePage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestRenderSize(t *testing.T) {
	page := whitePage(100, 200)

	out := Render(page, 100, 200, nil, 1, 1.5)

	b := out.Bounds()
	if b.Dx() != 150 || b.Dy() != 300 {
		t.Errorf("output size = %dx%d, want 150x300", b.Dx(), b.Dy())
	}
}

func TestRenderDrawsHighlight(t *testing.T) {
	page := whitePage(100, 100)
	highlights := []model.HighlightRect{
		{Rect: model.Rect{X: 10, Y: 10, Width: 20, Height: 10}, Page: 1},
	}

	out := Render(page, 100, 100, highlights, 1, 1)

	inside := out.RGBAAt(15, 15)
	outside := out.RGBAAt(80, 80)

	if inside == outside {
		t.Error("highlight area matches untouched page pixel; nothing was drawn")
	}
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Errorf("untouched pixel = %v, want white", outside)
	}
}

func TestRenderDistinguishesCurrent(t *testing.T) {
	page := whitePage(100, 100)
	highlights := []model.HighlightRect{
		{Rect: model.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Page: 1},
		{Rect: model.Rect{X: 50, Y: 50, Width: 10, Height: 10}, Page: 1, Current: true},
	}

	out := Render(page, 100, 100, highlights, 1, 1)

	normal := out.RGBAAt(5, 5)
	current := out.RGBAAt(55, 55)
	if normal == current {
		t.Error("current match drawn in the same color as a normal match")
	}
}

func TestRenderFiltersByPage(t *testing.T) {
	page := whitePage(50, 50)
	highlights := []model.HighlightRect{
		{Rect: model.Rect{X: 10, Y: 10, Width: 10, Height: 10}, Page: 2},
	}

	out := Render(page, 50, 50, highlights, 1, 1)

	px := out.RGBAAt(15, 15)
	if px.R != 255 || px.G != 255 || px.B != 255 {
		t.Errorf("pixel = %v; highlight from another page was drawn", px)
	}
}

func TestRenderClampsOutOfBounds(t *testing.T) {
	page := whitePage(50, 50)
	highlights := []model.HighlightRect{
		{Rect: model.Rect{X: 40, Y: 40, Width: 100, Height: 100}, Page: 1},
	}

	// Must not panic; the box is clamped to the image.
	out := Render(page, 50, 50, highlights, 1, 1)
	if out.Bounds().Dx() != 50 {
		t.Errorf("output width = %d, want 50", out.Bounds().Dx())
	}
}
