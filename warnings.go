package docsearch

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal problem encountered during a search, such as
// a page whose text could not be extracted. The search still completes;
// the affected page simply contributes no matches.
type Warning struct {
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string,
// suitable for logging by the host.
//
// Example:
//
//	matches, warnings, _ := engine.Search(ctx, "chapter")
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docsearch.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
