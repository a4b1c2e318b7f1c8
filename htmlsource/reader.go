// Package htmlsource provides a document source backed by positioned-HTML
// page dumps, the kind produced by PDF-to-HTML converters that emit one
// absolutely positioned span per text run.
//
// Expected shape:
//
//	<div class="page" data-page="1" data-width="612" data-height="792">
//	  <span style="left:72pt;bottom:700pt;width:48pt;font-size:12pt">Hello</span>
//	</div>
//
// Lengths may carry a pt or px suffix or none; both are taken as page
// units. Spans without a left/bottom position are skipped.
//
// The Reader implements pagetext.Source, so it plugs directly into a
// search engine:
//
//	src, err := htmlsource.Open("document.html")
//	engine := docsearch.New(src)
package htmlsource

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docsearch/model"
)

// Reader provides positioned text fragments parsed from an HTML page dump.
// It implements pagetext.Source.
type Reader struct {
	pages []page
}

type page struct {
	number    int
	width     float64
	height    float64
	fragments []model.TextFragment
}

// Open opens and parses an HTML file.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses positioned HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.collectPages(doc)

	if len(reader.pages) == 0 {
		return nil, fmt.Errorf("no page elements found")
	}

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// PageCount returns the number of parsed pages.
func (r *Reader) PageCount() (int, error) {
	return len(r.pages), nil
}

// PageSize returns the dimensions of a page (1-indexed).
func (r *Reader) PageSize(pageNum int) (float64, float64, error) {
	p, err := r.page(pageNum)
	if err != nil {
		return 0, 0, err
	}
	return p.width, p.height, nil
}

// PageFragments returns the positioned text fragments of a page
// (1-indexed) in document order.
func (r *Reader) PageFragments(_ context.Context, pageNum int) ([]model.TextFragment, error) {
	p, err := r.page(pageNum)
	if err != nil {
		return nil, err
	}
	return p.fragments, nil
}

func (r *Reader) page(pageNum int) (*page, error) {
	for i := range r.pages {
		if r.pages[i].number == pageNum {
			return &r.pages[i], nil
		}
	}
	return nil, fmt.Errorf("no such page: %d", pageNum)
}

// collectPages walks the DOM for elements with class "page".
func (r *Reader) collectPages(n *html.Node) {
	if n.Type == html.ElementNode && hasClass(n, "page") {
		r.parsePage(n)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectPages(c)
	}
}

// parsePage reads a page container and its positioned spans.
func (r *Reader) parsePage(n *html.Node) {
	p := page{
		number: len(r.pages) + 1,
		width:  612,
		height: 792,
	}

	if v, err := strconv.Atoi(getAttr(n, "data-page")); err == nil && v > 0 {
		p.number = v
	}
	if v, err := strconv.ParseFloat(getAttr(n, "data-width"), 64); err == nil && v > 0 {
		p.width = v
	}
	if v, err := strconv.ParseFloat(getAttr(n, "data-height"), 64); err == nil && v > 0 {
		p.height = v
	}

	collectSpans(n, &p)
	r.pages = append(r.pages, p)
}

// collectSpans gathers positioned text runs under a page container.
func collectSpans(n *html.Node, p *page) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == "span" || c.Data == "div" {
			if frag, ok := parseFragment(c, p.height); ok {
				p.fragments = append(p.fragments, frag)
				continue
			}
		}
		collectSpans(c, p)
	}
}

// parseFragment builds a fragment from a positioned element. Elements
// without both a left and a bottom (or top) style are not fragments.
func parseFragment(n *html.Node, pageHeight float64) (model.TextFragment, bool) {
	style := parseStyle(getAttr(n, "style"))

	left, hasLeft := style["left"]
	if !hasLeft {
		return model.TextFragment{}, false
	}

	bottom, hasBottom := style["bottom"]
	if !hasBottom {
		top, hasTop := style["top"]
		if !hasTop {
			return model.TextFragment{}, false
		}
		size := style["font-size"]
		bottom = pageHeight - top - size
	}

	text := getTextContent(n)
	if strings.TrimSpace(text) == "" {
		return model.TextFragment{}, false
	}

	return model.TextFragment{
		Text:     text,
		X:        left,
		Y:        bottom,
		Width:    style["width"],
		FontSize: style["font-size"],
	}, true
}

// parseStyle parses an inline style attribute into length values.
func parseStyle(style string) map[string]float64 {
	out := make(map[string]float64)
	for _, decl := range strings.Split(style, ";") {
		key, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if length, ok := parseLength(strings.TrimSpace(val)); ok {
			out[strings.TrimSpace(key)] = length
		}
	}
	return out
}

// parseLength parses a CSS length, accepting pt, px, or no unit.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSuffix(s, "pt")
	s = strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// getAttr returns the value of an attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// hasClass checks whether a node's class attribute contains the given class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getTextContent returns the concatenated text of a node's subtree.
func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(getTextContent(c))
	}
	return sb.String()
}
