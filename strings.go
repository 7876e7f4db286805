package strsearch

import (
	"strings"

	"github.com/coregx/strsearch/search"
)

// Index returns the byte offset of the first match of p in s, or -1 if p
// does not match.
func Index(s string, p Pattern) int {
	start, _, ok := search.NextMatch(p.Searcher(s))
	if !ok {
		return -1
	}
	return start
}

// LastIndex returns the byte offset of the last match of p in s, or -1 if p
// does not match. It needs backward stepping and panics for AnyLiteral
// patterns.
func LastIndex(s string, p Pattern) int {
	start, _, ok := search.NextMatchBack(reverseSearcher(s, p))
	if !ok {
		return -1
	}
	return start
}

// Count returns the number of non-overlapping matches of p in s.
func Count(s string, p Pattern) int {
	n := 0
	sr := p.Searcher(s)
	for {
		if _, _, ok := search.NextMatch(sr); !ok {
			return n
		}
		n++
	}
}

// MatchRanges returns the [start, end) byte ranges of all non-overlapping
// matches of p in s, in order. It returns nil when p does not match.
func MatchRanges(s string, p Pattern) [][2]int {
	var ranges [][2]int
	sr := p.Searcher(s)
	for {
		start, end, ok := search.NextMatch(sr)
		if !ok {
			return ranges
		}
		ranges = append(ranges, [2]int{start, end})
	}
}

// Split slices s into the substrings between consecutive matches of p and
// returns them. Adjacent matches and matches at either end of s produce
// empty substrings; an empty literal pattern, which matches at every
// character boundary, therefore splits s into its characters framed by two
// empty strings.
func Split(s string, p Pattern) []string {
	var parts []string
	prev := 0
	sr := p.Searcher(s)
	for {
		start, end, ok := search.NextMatch(sr)
		if !ok {
			return append(parts, s[prev:])
		}
		parts = append(parts, s[prev:start])
		prev = end
	}
}

// TrimLeft returns s without the leading run of matches of p: the suffix of
// s starting at the first rejected range, or "" when p matches all of s.
func TrimLeft(s string, p Pattern) string {
	start, _, ok := search.NextReject(p.Searcher(s))
	if !ok {
		return ""
	}
	return s[start:]
}

// TrimRight returns s without the trailing run of matches of p. It needs
// backward stepping and panics for AnyLiteral patterns.
func TrimRight(s string, p Pattern) string {
	_, end, ok := search.NextRejectBack(reverseSearcher(s, p))
	if !ok {
		return ""
	}
	return s[:end]
}

// Trim returns s without leading and trailing runs of matches of p.
//
// Both ends are found on a single searcher driven from both directions,
// which is only sound for symmetric searchers: Trim panics unless p's
// searcher is a search.DoubleEndedSearcher (a character-classifier pattern:
// Char, AnyOf or Func).
func Trim(s string, p Pattern) string {
	sr := doubleEndedSearcher(s, p)
	i, j := 0, 0
	if start, end, ok := search.NextReject(sr); ok {
		// Earliest reject; its end stands in for j in case the forward
		// pass already consumed the whole window.
		i, j = start, end
	}
	if _, end, ok := search.NextRejectBack(sr); ok {
		j = end
	}
	return s[i:j]
}

// ReplaceAll returns s with every non-overlapping match of p replaced by
// repl. When p is an empty literal pattern, repl is inserted at every
// character boundary.
func ReplaceAll(s string, p Pattern, repl string) string {
	var b strings.Builder
	prev := 0
	replaced := false
	sr := p.Searcher(s)
	for {
		start, end, ok := search.NextMatch(sr)
		if !ok {
			break
		}
		b.WriteString(s[prev:start])
		b.WriteString(repl)
		prev = end
		replaced = true
	}
	if !replaced {
		return s
	}
	b.WriteString(s[prev:])
	return b.String()
}
