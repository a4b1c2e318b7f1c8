package search

import (
	"testing"

	"github.com/tsawler/docsearch/model"
	"github.com/tsawler/docsearch/pagetext"
)

const testPageHeight = 792.0

// record builds a single-page record from fragment texts laid out left to
// right on one line.
func record(t *testing.T, page int, texts ...string) *pagetext.Record {
	t.Helper()

	fragments := make([]model.TextFragment, 0, len(texts))
	x := 72.0
	for _, text := range texts {
		fragments = append(fragments, model.TextFragment{
			Text:     text,
			X:        x,
			Y:        700,
			Width:    float64(len(text)) * 6,
			FontSize: 12,
		})
		x += float64(len(text)) * 6
	}

	rec, err := pagetext.NewRecord(page, 612, testPageHeight, fragments)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	return rec
}

func TestFindMatchesBasic(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "the quick brown fox")}

	matches := FindMatches("quick", records)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	m := matches[0]
	if m.Page != 1 || m.Ordinal != 0 {
		t.Errorf("match = page %d ordinal %d, want page 1 ordinal 0", m.Page, m.Ordinal)
	}
	if m.Text != "quick" {
		t.Errorf("Text = %q, want %q", m.Text, "quick")
	}
	if len(m.Rects) != 1 {
		t.Errorf("got %d rects, want 1", len(m.Rects))
	}
}

func TestFindMatchesEmptyQuery(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "some text")}

	for _, query := range []string{"", "   ", "\t\n"} {
		if got := FindMatches(query, records); got != nil {
			t.Errorf("FindMatches(%q) = %v, want nil", query, got)
		}
	}
}

func TestFindMatchesCaseInsensitive(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "Chapter one, CHAPTER two, chapter three")}

	matches := FindMatches("chapter", records)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}

	// Matched text preserves the casing found in the source.
	want := []string{"Chapter", "CHAPTER", "chapter"}
	for i, m := range matches {
		if m.Text != want[i] {
			t.Errorf("matches[%d].Text = %q, want %q", i, m.Text, want[i])
		}
	}
}

func TestFindMatchesOverlapping(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "aaa")}

	matches := FindMatches("aa", records)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
}

func TestFindMatchesAcrossFragmentBoundary(t *testing.T) {
	// Page text "program" split over two fragments.
	records := []*pagetext.Record{record(t, 1, "pro", "gram")}

	matches := FindMatches("ogra", records)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if len(matches[0].Rects) != 2 {
		t.Errorf("got %d rects, want one per spanned fragment (2)", len(matches[0].Rects))
	}
}

func TestFindMatchesOrdinalMonotonicity(t *testing.T) {
	records := []*pagetext.Record{
		record(t, 1, "cat and cat"),
		record(t, 2, "dog"),
		record(t, 3, "cat again cat and cat"),
	}

	matches := FindMatches("cat", records)
	if len(matches) != 5 {
		t.Fatalf("got %d matches, want 5", len(matches))
	}

	for i, m := range matches {
		if m.Ordinal != i {
			t.Errorf("matches[%d].Ordinal = %d", i, m.Ordinal)
		}
		if i > 0 && m.Page < matches[i-1].Page {
			t.Errorf("page order violated at %d: %d after %d", i, m.Page, matches[i-1].Page)
		}
	}
}

func TestFindMatchesNoOccurrences(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "nothing to see")}

	if got := FindMatches("zebra", records); len(got) != 0 {
		t.Errorf("got %d matches, want 0", len(got))
	}
}

func TestFindMatchesSkipsNilRecords(t *testing.T) {
	// A page that failed extraction contributes a nil record; the search
	// continues across the remaining pages.
	records := []*pagetext.Record{
		record(t, 1, "cat"),
		nil,
		record(t, 3, "cat"),
	}

	matches := FindMatches("cat", records)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Page != 1 || matches[1].Page != 3 {
		t.Errorf("pages = %d, %d, want 1, 3", matches[0].Page, matches[1].Page)
	}
}

func TestFindMatchesUnicodeFolding(t *testing.T) {
	records := []*pagetext.Record{record(t, 1, "Über Äpfel")}

	matches := FindMatches("über", records)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Text != "Über" {
		t.Errorf("Text = %q, want %q", matches[0].Text, "Über")
	}
}

func TestFindMatchesRuneOffsetsStayAligned(t *testing.T) {
	// Multi-byte runes before the hit must not shift the highlight onto
	// the wrong fragment.
	records := []*pagetext.Record{record(t, 1, "ÄÖÜ", "find")}

	matches := FindMatches("find", records)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if len(matches[0].Rects) != 1 {
		t.Fatalf("got %d rects, want 1 (second fragment only)", len(matches[0].Rects))
	}
}
