package search

import "unicode/utf8"

// LiteralSearcher finds occurrences of a literal substring by naive byte
// window comparison. No allocation, O(len(haystack) * len(needle)) worst
// case; no attempt is made at anything smarter.
//
// The window compare works on raw bytes and may span several characters. On
// a mismatch the cursor skips exactly one decoded character, which is what
// keeps every emitted Reject boundary on a character boundary even though
// the comparison itself ignores them.
//
// The empty needle is a well-defined degenerate case: it matches as a
// zero-length range at every character boundary of the haystack, including
// both ends, so a haystack of k characters yields k+1 matches. This is the
// one stream in which the emitted ranges do not tile the haystack: the
// characters between two boundaries are skipped, not rejected.
//
// LiteralSearcher supports backward stepping but is not double-ended: the
// two directions may pick different alignments among overlapping candidates
// (see ReverseSearcher).
type LiteralSearcher struct {
	haystack string
	needle   string

	// Unsearched window is haystack[start:end]. Forward stepping moves
	// start, backward stepping moves end.
	start int
	end   int
	done  bool
}

// NewLiteralSearcher returns a searcher for needle in haystack. Both must be
// valid UTF-8.
func NewLiteralSearcher(haystack, needle string) *LiteralSearcher {
	return &LiteralSearcher{
		haystack: haystack,
		needle:   needle,
		end:      len(haystack),
	}
}

// Haystack returns the string being searched.
func (s *LiteralSearcher) Haystack() string { return s.haystack }

// Next performs one search step from the front.
func (s *LiteralSearcher) Next() Step {
	return s.step(s.emptyForward, s.windowForward)
}

// NextBack performs one search step from the back.
func (s *LiteralSearcher) NextBack() Step {
	return s.step(s.emptyBackward, s.windowBackward)
}

// step is the stepping policy shared by both directions; empty and window
// supply the direction-specific cursor moves.
func (s *LiteralSearcher) step(empty, window func() Step) Step {
	switch {
	case s.done:
		return Done()

	case len(s.needle) == 0 && s.start <= s.end:
		// The converged step still emits one zero-length match; it must
		// not advance, so done is set before calling empty.
		if s.start == s.end {
			s.done = true
		}
		return empty()

	case s.start+len(s.needle) <= s.end:
		return window()

	case s.start < s.end:
		// Remainder shorter than the needle: nothing in it can match.
		s.done = true
		return Rejected(s.start, s.end)

	default:
		s.done = true
		return Done()
	}
}

func (s *LiteralSearcher) emptyForward() Step {
	at := s.start
	if !s.done {
		_, size := utf8.DecodeRuneInString(s.haystack[s.start:])
		s.start += size
	}
	return Matched(at, at)
}

func (s *LiteralSearcher) emptyBackward() Step {
	at := s.end
	if !s.done {
		_, size := utf8.DecodeLastRuneInString(s.haystack[:s.end])
		s.end -= size
	}
	return Matched(at, at)
}

func (s *LiteralSearcher) windowForward() Step {
	at := s.start
	if s.haystack[s.start:s.start+len(s.needle)] == s.needle {
		s.start += len(s.needle)
		return Matched(at, s.start)
	}
	_, size := utf8.DecodeRuneInString(s.haystack[s.start:])
	s.start += size
	return Rejected(at, s.start)
}

func (s *LiteralSearcher) windowBackward() Step {
	at := s.end
	if s.haystack[s.end-len(s.needle):s.end] == s.needle {
		s.end -= len(s.needle)
		return Matched(s.end, at)
	}
	_, size := utf8.DecodeLastRuneInString(s.haystack[:s.end])
	s.end -= size
	return Rejected(s.end, at)
}
