// Package strsearch provides a generic substring and character search
// abstraction over UTF-8 text.
//
// A pattern — a single character, a set of characters, a predicate over
// characters, a literal substring, or a set of alternative literals — is
// searched in a haystack through one uniform stepping protocol, from the
// front or from the back, so that higher-level text operations (contains,
// prefix/suffix tests, find, split, trim, replace) never duplicate
// pattern-specific code.
//
// Basic usage:
//
//	// Build a pattern once, reuse it against any haystack.
//	sep := strsearch.Char(',')
//	strsearch.Split("a,b,c", sep) // ["a", "b", "c"]
//
//	digits := strsearch.Func(unicode.IsDigit)
//	strsearch.Contains("order 66", digits) // true
//
//	strsearch.HasPrefix("baz", strsearch.Literal("ba")) // true
//
// Advanced usage drives the stepping protocol directly:
//
//	s := strsearch.Literal("aa").Searcher("aaa")
//	s.Next() // Match(0, 2)
//	s.Next() // Reject(2, 3)
//	s.Next() // Done
//
// The protocol's guarantees (full coverage of the haystack, non-overlapping
// adjacent ranges, every offset on a character boundary) are documented in
// the search package. Patterns are plain values and may be reused to build
// any number of searchers; each searcher is single-pass and serves exactly
// one session.
//
// Searching never fails: absence of a match is an ordinary false/-1 result.
// The haystack is assumed to be valid UTF-8, validated by its owner.
package strsearch

import "github.com/coregx/strsearch/search"

// Pattern is a builder of searchers: one pattern value, applied to a
// haystack, yields a fresh single-session searcher.
//
// All searchers built by the patterns in this package can step backward
// (they implement search.ReverseSearcher) except those built by AnyLiteral,
// which only step forward. Operations that need backward stepping say so in
// their documentation and panic when the pattern cannot provide it.
type Pattern interface {
	// Searcher builds a new search session over haystack. The haystack
	// must be valid UTF-8 and must not be mutated while the searcher is
	// in use.
	Searcher(haystack string) search.Searcher
}

// Contains reports whether p matches anywhere in s.
func Contains(s string, p Pattern) bool {
	_, _, ok := search.NextMatch(p.Searcher(s))
	return ok
}

// HasPrefix reports whether p matches at the very front of s.
func HasPrefix(s string, p Pattern) bool {
	step := p.Searcher(s).Next()
	return step.Kind == search.KindMatch && step.Start == 0
}

// HasSuffix reports whether p matches at the very back of s.
//
// HasSuffix needs backward stepping and panics if p's searcher is not a
// search.ReverseSearcher (currently only AnyLiteral patterns).
func HasSuffix(s string, p Pattern) bool {
	step := reverseSearcher(s, p).NextBack()
	return step.Kind == search.KindMatch && step.End == len(s)
}

// reverseSearcher builds p's searcher and requires backward capability.
func reverseSearcher(s string, p Pattern) search.ReverseSearcher {
	rs, ok := p.Searcher(s).(search.ReverseSearcher)
	if !ok {
		panic("strsearch: pattern does not support searching from the back")
	}
	return rs
}

// doubleEndedSearcher builds p's searcher and requires symmetric two-ended
// capability.
func doubleEndedSearcher(s string, p Pattern) search.DoubleEndedSearcher {
	ds, ok := p.Searcher(s).(search.DoubleEndedSearcher)
	if !ok {
		panic("strsearch: pattern does not support double-ended searching")
	}
	return ds
}
