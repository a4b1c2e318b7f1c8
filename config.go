package docsearch

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileOptions is the on-disk shape of an engine options file.
type fileOptions struct {
	DebounceMS      int `yaml:"debounce_ms"`
	SearchTimeoutMS int `yaml:"search_timeout_ms"`
}

// LoadOptions reads engine options from a YAML file. Missing or
// zero-valued keys keep their defaults.
//
// Example file:
//
//	debounce_ms: 150
//	search_timeout_ms: 5000
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}

	return ParseOptions(data)
}

// ParseOptions parses YAML engine options.
func ParseOptions(data []byte) (Options, error) {
	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}

	if fo.DebounceMS < 0 || fo.SearchTimeoutMS < 0 {
		return Options{}, fmt.Errorf("parsing options: durations must not be negative")
	}

	opts := Options{
		DebounceInterval: time.Duration(fo.DebounceMS) * time.Millisecond,
		SearchTimeout:    time.Duration(fo.SearchTimeoutMS) * time.Millisecond,
	}
	return opts.withDefaults(), nil
}
