package ocr

import (
	"context"
	"fmt"
	"sync"

	"github.com/tsawler/docsearch/model"
)

// PageImage is one page of a scanned document: its raster data (PNG or
// JPEG) and its un-scaled page dimensions in page units.
type PageImage struct {
	Data   []byte
	Width  float64
	Height float64
}

// Source implements pagetext.Source over a sequence of page images,
// recognizing each page on first use. Recognition results are not cached
// here; the engine's page text cache already memoizes per page.
type Source struct {
	mu     sync.Mutex
	client *Client
	pages  []PageImage
}

// NewSource creates a source over page images. The source takes over the
// client for the duration of its lifetime; recognition calls are
// serialized because Tesseract clients are not safe for concurrent use.
func NewSource(client *Client, pages []PageImage) *Source {
	return &Source{client: client, pages: pages}
}

// PageCount returns the number of page images.
func (s *Source) PageCount() (int, error) {
	return len(s.pages), nil
}

// PageSize returns the dimensions of a page (1-indexed).
func (s *Source) PageSize(page int) (float64, float64, error) {
	if page < 1 || page > len(s.pages) {
		return 0, 0, fmt.Errorf("no such page: %d", page)
	}
	return s.pages[page-1].Width, s.pages[page-1].Height, nil
}

// PageFragments recognizes a page (1-indexed) and returns one fragment per
// recognized word, in reading order.
func (s *Source) PageFragments(ctx context.Context, page int) ([]model.TextFragment, error) {
	if page < 1 || page > len(s.pages) {
		return nil, fmt.Errorf("no such page: %d", page)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := s.pages[page-1]

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.RecognizeFragments(img.Data, img.Width, img.Height)
}
