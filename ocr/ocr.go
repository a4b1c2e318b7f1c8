//go:build ocr

// Package ocr provides a document source for scanned documents: pages with
// no text layer are recognized with the Tesseract OCR engine, and each
// recognized word becomes a positioned text fragment.
//
// This package wraps Tesseract via gosseract. It requires Tesseract to be
// installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/docsearch/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// NewClient creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func NewClient() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeFragments performs OCR on image data (PNG or JPEG) and returns
// one positioned fragment per recognized word. Word boxes are reported in
// image pixels with a top-left origin; they are scaled into the given page
// dimensions and converted to bottom-left page coordinates, so the result
// feeds directly into the search engine's geometry.
func (c *Client) RecognizeFragments(imageData []byte, pageWidth, pageHeight float64) ([]model.TextFragment, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	sx := pageWidth / float64(cfg.Width)
	sy := pageHeight / float64(cfg.Height)

	fragments := make([]model.TextFragment, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}

		height := float64(box.Box.Dy()) * sy
		fragments = append(fragments, model.TextFragment{
			Text:     box.Word + " ",
			X:        float64(box.Box.Min.X) * sx,
			Y:        pageHeight - float64(box.Box.Max.Y)*sy,
			Width:    float64(box.Box.Dx()) * sx,
			FontSize: height,
		})
	}

	return fragments, nil
}
