// Package pagetext memoizes per-page text extraction results.
//
// The engine consumes document text through the [Source] interface, which is
// implemented by an external document-rendering collaborator (or by the
// provided htmlsource and ocr packages). On the first search that touches a
// page, the [Cache] pulls the page's fragments through the Source, builds
// the concatenated page text with its fragment offset table, and keeps the
// resulting [Record] for the lifetime of the session. Later searches reuse
// the record without re-extracting.
//
// Offsets are rune offsets into the concatenated text, so they stay aligned
// with the case-folded text the match locator scans.
//
// A failed or malformed page yields an [ExtractionError] attributed to that
// page only; other pages remain searchable, and the failed page is not
// cached, so the next search re-attempts extraction.
//
// The cache is never proactively evicted. [Cache.Invalidate] drops all
// records wholesale when the host signals that the document changed.
package pagetext
