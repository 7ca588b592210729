package envjson

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/Azhovan/envjson/internal/keypath"
)

// DefaultSeparator splits keys into path segments when no WithSeparator
// option is given.
const DefaultSeparator = "__"

// Pair is a single raw environment entry. Slices of pairs carry an explicit
// processing order; see ParsePairs.
type Pair struct {
	Key   string
	Value string
}

// Option configures a Parser. Options are applied in order by New and may
// reject their argument.
type Option func(*Parser) error

// Parser converts flat environment-style key/value pairs into a nested value
// tree. A Parser is immutable once built and can be reused across parses;
// every parse returns a fresh tree.
type Parser struct {
	prefix       string
	separator    string
	include      []*regexp.Regexp
	exclude      []*regexp.Regexp
	document     map[string]any
	rawStrings   bool
	preserveCase bool
}

// New creates a Parser with the given options. Defaults: no prefix, "__" as
// separator, no filter patterns, no base document, scalar coercion on, field
// names lowercased. The first option to fail aborts construction.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{separator: DefaultSeparator}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// WithPrefix restricts parsing to keys that start with prefix immediately
// followed by the separator; both are stripped before splitting. Matching is
// exact. An empty prefix (the default) accepts every key and strips nothing.
func WithPrefix(prefix string) Option {
	return func(p *Parser) error {
		p.prefix = prefix
		return nil
	}
}

// WithSeparator sets the string that delimits path segments within a key.
// Returns ErrEmptySeparator for "".
func WithSeparator(sep string) Option {
	return func(p *Parser) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		p.separator = sep
		return nil
	}
}

// WithInclude adds include patterns. Once at least one include pattern is
// configured, only keys matching one of them are parsed. Patterns are
// matched against the full original key, prefix included. A pattern that
// does not compile makes New return a *PatternError.
func WithInclude(patterns ...string) Option {
	return func(p *Parser) error {
		compiled, err := compilePatterns(patterns)
		if err != nil {
			return err
		}
		p.include = append(p.include, compiled...)
		return nil
	}
}

// WithExclude adds exclude patterns. Keys matching any of them are dropped,
// even when an include pattern matches too. Patterns are matched against the
// full original key, prefix included. A pattern that does not compile makes
// New return a *PatternError.
func WithExclude(patterns ...string) Option {
	return func(p *Parser) error {
		compiled, err := compilePatterns(patterns)
		if err != nil {
			return err
		}
		p.exclude = append(p.exclude, compiled...)
		return nil
	}
}

// WithDocument sets a base document that parsed values are merged over:
// parsed values win conflicts, object fields merge recursively, arrays and
// scalars replace outright. The document must be a map[string]any (or nil to
// clear); anything else returns ErrInvalidDocument. The document itself is
// never mutated; each parse merges over a fresh clone of it.
func WithDocument(doc any) Option {
	return func(p *Parser) error {
		if doc == nil {
			p.document = nil
			return nil
		}
		obj, ok := doc.(map[string]any)
		if !ok {
			return ErrInvalidDocument
		}
		p.document = obj
		return nil
	}
}

// WithRawStrings disables scalar coercion: every parsed value stays the
// string it was. Key splitting and filtering are unaffected.
func WithRawStrings() Option {
	return func(p *Parser) error {
		p.rawStrings = true
		return nil
	}
}

// WithPreserveCase keeps field names exactly as written in the key instead
// of lowercasing them.
func WithPreserveCase() Option {
	return func(p *Parser) error {
		p.preserveCase = true
		return nil
	}
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &PatternError{Pattern: pat, Err: err}
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Parse converts vars into a nested value tree. Entries are processed in
// ascending key order, so output is deterministic even when entries
// conflict. Keys without the prefix, keys rejected by the filters, and keys
// with empty path segments carry no entry and are skipped silently.
func (p *Parser) Parse(vars map[string]string) map[string]any {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: vars[k]})
	}
	return p.ParsePairs(pairs)
}

// ParsePairs is Parse with explicit ordering: entries are processed exactly
// in the order given, and when entries conflict the later one wins.
func (p *Parser) ParsePairs(pairs []Pair) map[string]any {
	opts := keypath.Options{
		Prefix:       p.prefix,
		Separator:    p.separator,
		PreserveCase: p.preserveCase,
	}

	t := newTree()
	for _, pair := range pairs {
		if !p.keep(pair.Key) {
			continue
		}
		path, err := keypath.Split(pair.Key, opts)
		if err != nil {
			continue
		}
		value := any(pair.Value)
		if !p.rawStrings {
			value = coerce(pair.Value)
		}
		t.insert(path, value)
	}

	if p.document == nil {
		return t.root
	}
	return mergeObjects(t.root, cloneDocument(p.document))
}

// ParseEnviron parses the current process environment. Equivalent to calling
// Parse with every variable os.Environ reports.
func (p *Parser) ParseEnviron() map[string]any {
	env := os.Environ()
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		vars[parts[0]] = parts[1]
	}
	return p.Parse(vars)
}

// keep reports whether a key passes the configured filters. Filters see the
// full original key, prefix included. Exclude patterns win over includes.
func (p *Parser) keep(key string) bool {
	for _, re := range p.exclude {
		if re.MatchString(key) {
			return false
		}
	}
	if len(p.include) == 0 {
		return true
	}
	for _, re := range p.include {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}
