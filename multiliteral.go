package strsearch

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/strsearch/search"
)

// Config controls how AnyLiteral patterns search.
type Config struct {
	// AutomatonThreshold is the number of alternatives at which AnyLiteral
	// switches from scanning alternatives sequentially at each position to
	// a single Aho-Corasick automaton pass. Sets smaller than the
	// threshold don't amortize the automaton's construction cost.
	AutomatonThreshold int
}

// DefaultConfig returns the default AnyLiteral configuration.
func DefaultConfig() Config {
	return Config{AutomatonThreshold: 8}
}

// multiLiteralPattern matches any one of several literal alternatives. The
// automaton, when used, is built once per pattern and shared by all
// searchers; Aho-Corasick automata are safe for concurrent searching.
type multiLiteralPattern struct {
	alternatives []string
	auto         *ahocorasick.Automaton
}

// AnyLiteral returns a pattern matching any one of the alternative literal
// substrings, using the default configuration.
//
// Every alternative must be non-empty valid UTF-8; otherwise an error
// wrapping ErrNoAlternatives, ErrEmptyAlternative or ErrInvalidUTF8 is
// returned.
//
// Searchers built from the pattern only step forward, so HasSuffix,
// LastIndex, TrimRight and Trim refuse AnyLiteral patterns. Which
// alternative wins when several match at the same position is unspecified,
// but fixed for any one pattern value.
//
// Example:
//
//	p, err := strsearch.AnyLiteral("cat", "dog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	strsearch.Contains("hotdog", p) // true
func AnyLiteral(alternatives ...string) (Pattern, error) {
	return AnyLiteralWithConfig(DefaultConfig(), alternatives...)
}

// AnyLiteralWithConfig is AnyLiteral with an explicit configuration.
//
// Example:
//
//	// Force the automaton strategy regardless of set size.
//	cfg := strsearch.Config{AutomatonThreshold: 1}
//	p, err := strsearch.AnyLiteralWithConfig(cfg, "cat", "dog")
func AnyLiteralWithConfig(cfg Config, alternatives ...string) (Pattern, error) {
	if len(alternatives) == 0 {
		return nil, ErrNoAlternatives
	}
	for i, alt := range alternatives {
		if alt == "" {
			return nil, fmt.Errorf("alternative %d: %w", i, ErrEmptyAlternative)
		}
		if !utf8.ValidString(alt) {
			return nil, fmt.Errorf("alternative %d: %w", i, ErrInvalidUTF8)
		}
	}

	p := &multiLiteralPattern{
		alternatives: append([]string(nil), alternatives...),
	}
	if len(p.alternatives) >= cfg.AutomatonThreshold {
		builder := ahocorasick.NewBuilder()
		for _, alt := range p.alternatives {
			builder.AddPattern([]byte(alt))
		}
		// A build failure is not fatal: fall back to the sequential scan.
		if auto, err := builder.Build(); err == nil {
			p.auto = auto
		}
	}
	return p, nil
}

func (p *multiLiteralPattern) Searcher(haystack string) search.Searcher {
	if p.auto != nil {
		return search.NewAutomatonSearcher(haystack, p.auto)
	}
	return search.NewMultiLiteralSearcher(haystack, p.alternatives)
}
