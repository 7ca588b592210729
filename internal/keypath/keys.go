package keypath

import (
	"errors"
	"strconv"
	"strings"
)

// Options controls how a raw environment key is split into path segments.
type Options struct {
	// Prefix restricts splitting to keys that start with Prefix immediately
	// followed by Separator; the leading "Prefix+Separator" is stripped.
	// Matching is exact. Empty = accept every key, strip nothing.
	Prefix string

	// Separator delimits path segments within a key (e.g. "__").
	// Must be non-empty.
	Separator string

	// PreserveCase keeps field segments exactly as written.
	// Default is to lowercase them.
	PreserveCase bool
}

// Segment is one level of a key path.
// Name always carries the segment text; Index is only meaningful when
// IsIndex is set.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Split errors. Callers treat both as "this key carries no entry".
var (
	// ErrNoPrefix is returned when a key does not start with the configured
	// prefix and separator.
	ErrNoPrefix = errors.New("key does not start with the configured prefix")

	// ErrEmptySegment is returned when splitting produced an empty segment
	// (leading, trailing, or doubled separator).
	ErrEmptySegment = errors.New("key contains an empty path segment")
)

// Split breaks a raw key into path segments.
// The prefix (with its trailing separator) is stripped first, then the
// remainder is split on the separator and each part is classified.
// Examples, with Prefix "APP" and Separator "__":
//   - "APP__DATABASE__HOST" → [database, host]
//   - "APP__SERVERS__0"     → [servers, index 0]
//   - "OTHER__HOST"         → ErrNoPrefix
//   - "APP__A____B"         → ErrEmptySegment
func Split(key string, opts Options) ([]Segment, error) {
	rest := key
	if opts.Prefix != "" {
		lead := opts.Prefix + opts.Separator
		if !strings.HasPrefix(key, lead) {
			return nil, ErrNoPrefix
		}
		rest = key[len(lead):]
	}

	parts := strings.Split(rest, opts.Separator)
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, ErrEmptySegment
		}
		segments = append(segments, classify(part, opts.PreserveCase))
	}
	return segments, nil
}

// classify decides whether a segment addresses an array index or an object
// field. Indices are unsigned base-10 integers (leading zeros allowed, no
// sign); anything else, including numbers too wide for an index, is a field.
func classify(part string, preserveCase bool) Segment {
	if idx, err := strconv.ParseUint(part, 10, 31); err == nil {
		return Segment{Name: part, Index: int(idx), IsIndex: true}
	}
	if !preserveCase {
		part = strings.ToLower(part)
	}
	return Segment{Name: part}
}
