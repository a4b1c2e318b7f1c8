package htmlsource

import (
	"context"
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html><body>
<div class="page" data-page="1" data-width="612" data-height="792">
  <span style="left:72pt;bottom:700pt;width:48pt;font-size:12pt">Hello</span>
  <span style="left:130pt;bottom:700pt;width:50pt;font-size:12pt">world</span>
</div>
<div class="page" data-page="2" data-width="612" data-height="792">
  <span style="left:72pt;bottom:650pt;width:80pt;font-size:14pt">Chapter Two</span>
</div>
</body></html>`

func TestOpenReader(t *testing.T) {
	r, err := OpenReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if count != 2 {
		t.Errorf("PageCount = %d, want 2", count)
	}

	w, h, err := r.PageSize(1)
	if err != nil {
		t.Fatalf("PageSize: %v", err)
	}
	if w != 612 || h != 792 {
		t.Errorf("PageSize = %v x %v, want 612 x 792", w, h)
	}
}

func TestPageFragments(t *testing.T) {
	r, err := OpenReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}

	fragments, err := r.PageFragments(context.Background(), 1)
	if err != nil {
		t.Fatalf("PageFragments: %v", err)
	}
	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}

	first := fragments[0]
	if first.Text != "Hello" {
		t.Errorf("Text = %q, want %q", first.Text, "Hello")
	}
	if first.X != 72 || first.Y != 700 {
		t.Errorf("origin = (%v, %v), want (72, 700)", first.X, first.Y)
	}
	if first.Width != 48 || first.FontSize != 12 {
		t.Errorf("Width/FontSize = %v/%v, want 48/12", first.Width, first.FontSize)
	}
}

func TestMissingPage(t *testing.T) {
	r, err := OpenReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}

	if _, err := r.PageFragments(context.Background(), 99); err == nil {
		t.Error("expected error for missing page")
	}
	if _, _, err := r.PageSize(0); err == nil {
		t.Error("expected error for page 0")
	}
}

func TestTopPositionedSpans(t *testing.T) {
	const topHTML = `<div class="page" data-page="1" data-height="800">
	  <span style="left:10pt;top:90pt;font-size:10pt">top-anchored</span>
	</div>`

	r, err := OpenReader(strings.NewReader(topHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}

	fragments, err := r.PageFragments(context.Background(), 1)
	if err != nil {
		t.Fatalf("PageFragments: %v", err)
	}
	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1", len(fragments))
	}

	// bottom = pageHeight - top - fontSize = 800 - 90 - 10
	if fragments[0].Y != 700 {
		t.Errorf("Y = %v, want 700", fragments[0].Y)
	}
}

func TestSkipsUnpositionedContent(t *testing.T) {
	const mixedHTML = `<div class="page" data-page="1">
	  <span>no position</span>
	  <span style="left:10pt;bottom:500pt">positioned</span>
	  <span style="left:20pt;bottom:480pt">   </span>
	</div>`

	r, err := OpenReader(strings.NewReader(mixedHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}

	fragments, err := r.PageFragments(context.Background(), 1)
	if err != nil {
		t.Fatalf("PageFragments: %v", err)
	}
	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1", len(fragments))
	}
	if fragments[0].Text != "positioned" {
		t.Errorf("Text = %q, want %q", fragments[0].Text, "positioned")
	}
}

func TestNoPages(t *testing.T) {
	if _, err := OpenReader(strings.NewReader("<html><body><p>plain</p></body></html>")); err == nil {
		t.Error("expected error for HTML without page containers")
	}
}

func TestUnitlessLengths(t *testing.T) {
	const plain = `<div class="page" data-page="1" data-width="1000" data-height="1400">
	  <span style="left:100;bottom:1200;width:60;font-size:16">plain units</span>
	</div>`

	r, err := OpenReader(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}

	fragments, err := r.PageFragments(context.Background(), 1)
	if err != nil {
		t.Fatalf("PageFragments: %v", err)
	}
	if fragments[0].X != 100 || fragments[0].FontSize != 16 {
		t.Errorf("X/FontSize = %v/%v, want 100/16", fragments[0].X, fragments[0].FontSize)
	}
}
