package search

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// MultiLiteralSearcher finds occurrences of any one of several literal
// alternatives. Two strategies share the type:
//
//   - Sequential: at each position, try each alternative's byte window in
//     the order supplied; a position where none matches is rejected one
//     decoded character at a time, exactly like LiteralSearcher.
//   - Automaton: an Aho-Corasick automaton locates the next occurrence in
//     one pass; the gap before it is emitted as a single Reject, then the
//     Match, then one final Reject for the unmatched tail.
//
// The two strategies emit different Reject granularities and may pick a
// different alternative when several match at the same position; both
// streams obey the partition invariant. Every alternative must be non-empty
// valid UTF-8, which is what keeps automaton-reported offsets on character
// boundaries.
//
// MultiLiteralSearcher only steps forward; it is not a ReverseSearcher.
type MultiLiteralSearcher struct {
	haystack     string
	alternatives []string
	auto         *ahocorasick.Automaton
	raw          []byte // haystack bytes for the automaton

	start   int
	pending Step // Match found behind a gap, emitted on the next call
	done    bool
}

// NewMultiLiteralSearcher returns a sequential-strategy searcher for the
// given alternatives in haystack. Alternatives must be non-empty valid
// UTF-8; the haystack must be valid UTF-8.
func NewMultiLiteralSearcher(haystack string, alternatives []string) *MultiLiteralSearcher {
	return &MultiLiteralSearcher{
		haystack:     haystack,
		alternatives: alternatives,
	}
}

// NewAutomatonSearcher returns an automaton-strategy searcher. The automaton
// must have been built from non-empty valid UTF-8 patterns.
func NewAutomatonSearcher(haystack string, auto *ahocorasick.Automaton) *MultiLiteralSearcher {
	return &MultiLiteralSearcher{
		haystack: haystack,
		auto:     auto,
		raw:      []byte(haystack),
	}
}

// Haystack returns the string being searched.
func (s *MultiLiteralSearcher) Haystack() string { return s.haystack }

// Next performs one search step from the front.
func (s *MultiLiteralSearcher) Next() Step {
	if s.done {
		return Done()
	}
	if s.pending.Kind == KindMatch {
		step := s.pending
		s.pending = Step{}
		s.start = step.End
		return step
	}
	if s.start >= len(s.haystack) {
		s.done = true
		return Done()
	}
	if s.auto != nil {
		return s.nextAutomaton()
	}
	return s.nextSequential()
}

func (s *MultiLiteralSearcher) nextAutomaton() Step {
	m := s.auto.Find(s.raw, s.start)
	if m == nil {
		s.done = true
		return Rejected(s.start, len(s.haystack))
	}
	if m.Start == s.start {
		s.start = m.End
		return Matched(m.Start, m.End)
	}
	s.pending = Matched(m.Start, m.End)
	return Rejected(s.start, m.Start)
}

func (s *MultiLiteralSearcher) nextSequential() Step {
	at := s.start
	for _, alt := range s.alternatives {
		if at+len(alt) <= len(s.haystack) && s.haystack[at:at+len(alt)] == alt {
			s.start = at + len(alt)
			return Matched(at, s.start)
		}
	}
	_, size := utf8.DecodeRuneInString(s.haystack[at:])
	s.start = at + size
	return Rejected(at, s.start)
}
