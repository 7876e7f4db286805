package search

// Searcher performs one matching session over one haystack, from the front.
//
// A searcher is single-pass: once it has returned Done it produces nothing
// more, and it cannot be rewound. Restarting a search means building a fresh
// searcher from the original pattern and haystack. A searcher's cursor state
// is exclusively owned by its caller and must not be driven from more than
// one goroutine; the haystack itself is never mutated and may be shared by
// any number of independent searchers.
//
// The stream of Match and Reject steps up to Done follows the partition
// invariant documented on Step. As an example, the pattern "aaa" and the
// haystack "cbaaaaab" produce the stream
//
//	[Reject(0, 1), Reject(1, 2), Match(2, 5), Reject(5, 8)]
type Searcher interface {
	// Haystack returns the string being searched. It always returns the
	// same value for the lifetime of the searcher.
	Haystack() string

	// Next performs one search step from the front and returns it.
	Next() Step
}

// ReverseSearcher is a Searcher that can also step from the back of the
// haystack.
//
// The ranges produced by NextBack are not required to be the forward ranges
// in reverse order: backward search may partition the haystack differently.
// The literal pattern "aa" in the haystack "aaa" matches as Match(0, 2)
// going forward but Match(1, 3) going backward, and both streams are valid.
type ReverseSearcher interface {
	Searcher

	// NextBack performs one search step from the back and returns it. The
	// backward stream independently obeys the partition invariant.
	NextBack() Step
}

// DoubleEndedSearcher marks a ReverseSearcher whose two directions agree:
// the backward stream is exactly the forward stream in reverse order, and
// the two cursors can be driven from both ends of the same searcher without
// crossing or revisiting a byte.
//
// Only character-classifier searchers qualify: each of their steps consumes
// exactly one whole character, and character matching has no left or right
// context. Literal-substring searchers do not qualify in general, because
// overlapping candidate alignments can be resolved differently depending on
// the direction (see ReverseSearcher).
type DoubleEndedSearcher interface {
	ReverseSearcher

	// DoubleEnded is a marker method carrying no behavior. Implementing it
	// is the searcher's promise that the conditions above hold.
	DoubleEnded()
}

// NextMatch steps s forward until a Match is found, discarding Reject steps.
// It reports the match range, with ok=false once the searcher is done.
func NextMatch(s Searcher) (start, end int, ok bool) {
	for {
		switch step := s.Next(); step.Kind {
		case KindMatch:
			return step.Start, step.End, true
		case KindDone:
			return 0, 0, false
		}
	}
}

// NextReject steps s forward until a Reject is found, discarding Match steps.
// It reports the reject range, with ok=false once the searcher is done.
func NextReject(s Searcher) (start, end int, ok bool) {
	for {
		switch step := s.Next(); step.Kind {
		case KindReject:
			return step.Start, step.End, true
		case KindDone:
			return 0, 0, false
		}
	}
}

// NextMatchBack is NextMatch stepping from the back.
func NextMatchBack(s ReverseSearcher) (start, end int, ok bool) {
	for {
		switch step := s.NextBack(); step.Kind {
		case KindMatch:
			return step.Start, step.End, true
		case KindDone:
			return 0, 0, false
		}
	}
}

// NextRejectBack is NextReject stepping from the back.
func NextRejectBack(s ReverseSearcher) (start, end int, ok bool) {
	for {
		switch step := s.NextBack(); step.Kind {
		case KindReject:
			return step.Start, step.End, true
		case KindDone:
			return 0, 0, false
		}
	}
}
