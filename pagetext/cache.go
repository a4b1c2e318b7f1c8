package pagetext

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes per-page extraction results for the lifetime of a search
// session. It is safe for concurrent use: hits are served under a read
// lock, and concurrent misses for the same page are coalesced into a single
// extraction call.
type Cache struct {
	src Source

	mu      sync.RWMutex
	records map[int]*Record

	group singleflight.Group
}

// NewCache creates an empty cache over the given source.
func NewCache(src Source) *Cache {
	return &Cache{
		src:     src,
		records: make(map[int]*Record),
	}
}

// PageCount reports the number of pages in the underlying document.
func (c *Cache) PageCount() (int, error) {
	return c.src.PageCount()
}

// PageText returns the cached record for a page (1-indexed), extracting it
// through the source on first use. A failed page is not cached, so a later
// call re-attempts extraction.
func (c *Cache) PageText(ctx context.Context, page int) (*Record, error) {
	c.mu.RLock()
	rec, ok := c.records[page]
	c.mu.RUnlock()
	if ok {
		return rec, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(page), func() (interface{}, error) {
		// Re-check: another caller may have populated the entry between
		// the read-lock release and the singleflight slot.
		c.mu.RLock()
		rec, ok := c.records[page]
		c.mu.RUnlock()
		if ok {
			return rec, nil
		}

		rec, err := c.extract(ctx, page)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.records[page] = rec
		c.mu.Unlock()

		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Record), nil
}

// Invalidate drops every cached record. Call it when the host signals that
// the underlying document content changed; the next search re-extracts
// each page it touches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.records = make(map[int]*Record)
	c.mu.Unlock()
}

// extract pulls one page through the source and builds its record.
func (c *Cache) extract(ctx context.Context, page int) (*Record, error) {
	width, height, err := c.src.PageSize(page)
	if err != nil {
		return nil, &ExtractionError{Page: page, Err: err}
	}

	fragments, err := c.src.PageFragments(ctx, page)
	if err != nil {
		return nil, &ExtractionError{Page: page, Err: err}
	}

	return NewRecord(page, width, height, fragments)
}
