package docsearch

import "time"

// Options holds engine configuration.
type Options struct {
	// DebounceInterval is how long SetQuery waits after the last
	// keystroke before running the search. Rapid query changes within
	// the interval coalesce into one search. Default 300ms.
	DebounceInterval time.Duration

	// SearchTimeout bounds one search run across all pages, including
	// extraction calls into the document source. Zero means no timeout.
	SearchTimeout time.Duration
}

// defaultOptions returns the default engine options.
func defaultOptions() Options {
	return Options{
		DebounceInterval: 300 * time.Millisecond,
		SearchTimeout:    0,
	}
}

// withDefaults fills zero-valued fields with their defaults.
func (o Options) withDefaults() Options {
	def := defaultOptions()
	if o.DebounceInterval <= 0 {
		o.DebounceInterval = def.DebounceInterval
	}
	if o.SearchTimeout < 0 {
		o.SearchTimeout = 0
	}
	return o
}
