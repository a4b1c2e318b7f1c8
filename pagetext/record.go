package pagetext

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docsearch/model"
)

// Record is the cached extraction result for one page: the page's
// concatenated text alongside the fragments it was built from and the rune
// offset at which each fragment starts.
//
// The invariant Offsets[i] + len([]rune(Fragments[i].Text)) == Offsets[i+1]
// holds for every fragment but the last; fragment texts are joined with no
// separator, in extraction order. Records are immutable once built.
type Record struct {
	Page      int    // 1-indexed page number
	Width     float64
	Height    float64
	Text      string // Concatenated fragment texts
	Runes     []rune // Text as runes; offsets below index into this
	Fragments []model.TextFragment
	Offsets   []int // Starting rune offset of each fragment within Runes
}

// NewRecord assembles a Record from extracted fragments. Fragment text is
// normalized to NFC so that decomposed forms from the extraction source
// compare equal to composed query text. Fragments whose text is empty after
// normalization are dropped; a fragment with non-finite positioning data is
// treated as malformed extraction output.
//
// Most callers obtain records through [Cache.PageText]; NewRecord is
// exported for hosts that manage extraction themselves.
func NewRecord(page int, width, height float64, fragments []model.TextFragment) (*Record, error) {
	rec := &Record{
		Page:      page,
		Width:     width,
		Height:    height,
		Fragments: make([]model.TextFragment, 0, len(fragments)),
		Offsets:   make([]int, 0, len(fragments)),
	}

	var runes []rune
	for i, frag := range fragments {
		if !isFinite(frag.X) || !isFinite(frag.Y) || !isFinite(frag.Width) || !isFinite(frag.FontSize) {
			return nil, &ExtractionError{
				Page: page,
				Err:  fmt.Errorf("fragment %d: non-finite positioning data", i),
			}
		}

		frag.Text = norm.NFC.String(frag.Text)
		if frag.Text == "" {
			continue
		}

		rec.Fragments = append(rec.Fragments, frag)
		rec.Offsets = append(rec.Offsets, len(runes))
		runes = append(runes, []rune(frag.Text)...)
	}

	rec.Runes = runes
	rec.Text = string(runes)

	return rec, nil
}

// FragmentsInRange returns the fragments whose rune interval intersects
// [start, end), together with their indices. A fragment at offset off with
// n runes contributes when off < end && off+n > start.
func (r *Record) FragmentsInRange(start, end int) []model.TextFragment {
	var out []model.TextFragment
	for i, frag := range r.Fragments {
		off := r.Offsets[i]
		n := len([]rune(frag.Text))
		if off < end && off+n > start {
			out = append(out, frag)
		}
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
