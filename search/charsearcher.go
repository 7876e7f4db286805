package search

import (
	"unicode/utf8"

	"github.com/coregx/strsearch/charmatch"
)

// CharSearcher matches single characters against a classifier.
//
// Each step decodes exactly one character at the current cursor, classifies
// it, and emits a Match or Reject spanning exactly that character's bytes.
// Boundaries therefore land on character boundaries by construction, and the
// covered ranges partition the haystack automatically.
//
// The forward and backward cursors converge on the same window, so the two
// directions enumerate the same per-character ranges in opposite order:
// CharSearcher is a DoubleEndedSearcher.
type CharSearcher struct {
	haystack string
	matcher  charmatch.Matcher

	// Unvisited window is haystack[fwd:back]; fwd and back always sit on
	// character boundaries.
	fwd  int
	back int
}

// NewCharSearcher returns a searcher classifying each character of haystack
// with m. The haystack must be valid UTF-8.
func NewCharSearcher(haystack string, m charmatch.Matcher) *CharSearcher {
	return &CharSearcher{
		haystack: haystack,
		matcher:  m,
		back:     len(haystack),
	}
}

// Haystack returns the string being searched.
func (s *CharSearcher) Haystack() string { return s.haystack }

// Next decodes and classifies the next character from the front.
func (s *CharSearcher) Next() Step {
	if s.fwd >= s.back {
		return Done()
	}
	r, size := utf8.DecodeRuneInString(s.haystack[s.fwd:s.back])
	start := s.fwd
	s.fwd += size
	if s.matcher.Matches(r) {
		return Matched(start, s.fwd)
	}
	return Rejected(start, s.fwd)
}

// NextBack decodes and classifies the next character from the back.
func (s *CharSearcher) NextBack() Step {
	if s.fwd >= s.back {
		return Done()
	}
	r, size := utf8.DecodeLastRuneInString(s.haystack[s.fwd:s.back])
	end := s.back
	s.back -= size
	if s.matcher.Matches(r) {
		return Matched(s.back, end)
	}
	return Rejected(s.back, end)
}

// DoubleEnded marks CharSearcher as symmetric: see DoubleEndedSearcher.
func (s *CharSearcher) DoubleEnded() {}
