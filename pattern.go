package strsearch

import (
	"github.com/coregx/strsearch/charmatch"
	"github.com/coregx/strsearch/search"
)

// charPattern adapts a character classifier to the Pattern capability. Its
// searchers are double-ended: matching one character at a time behaves the
// same from both ends.
type charPattern struct {
	m charmatch.Matcher
}

func (p charPattern) Searcher(haystack string) search.Searcher {
	return search.NewCharSearcher(haystack, p.m)
}

// Char returns a pattern matching exactly the character r.
//
// Example:
//
//	strsearch.Index("crab", strsearch.Char('a')) // 2
func Char(r rune) Pattern {
	return charPattern{charmatch.Rune(r)}
}

// AnyOf returns a pattern matching any single character of chars.
//
// Example:
//
//	strsearch.Trim("--+x+--", strsearch.AnyOf("+-")) // "x"
func AnyOf(chars string) Pattern {
	return charPattern{charmatch.NewSet(chars)}
}

// Func returns a pattern matching every character accepted by pred.
//
// The predicate is stored by value; if it closes over mutable state, that
// state is shared by all searchers built from the pattern.
//
// Example:
//
//	strsearch.TrimLeft("  x", strsearch.Func(unicode.IsSpace)) // "x"
func Func(pred func(rune) bool) Pattern {
	return charPattern{charmatch.Func(pred)}
}

// literalPattern is the Pattern capability of one literal substring.
type literalPattern string

func (p literalPattern) Searcher(haystack string) search.Searcher {
	return search.NewLiteralSearcher(haystack, string(p))
}

// Literal returns a pattern matching the substring needle, located by naive
// non-allocating byte comparison. The needle must be valid UTF-8.
//
// The empty needle matches at every character boundary of the haystack,
// including both ends.
//
// Example:
//
//	strsearch.Contains("cbaaaaab", strsearch.Literal("aaa")) // true
func Literal(needle string) Pattern {
	return literalPattern(needle)
}
