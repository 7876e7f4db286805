// Package search defines the stepping protocol shared by all pattern
// searchers, and the searcher implementations themselves.
//
// A searcher walks one haystack exactly once, producing a lazy sequence of
// steps. Each step classifies a byte range of the haystack as a Match (an
// occurrence of the pattern) or a Reject (bytes that cannot be part of any
// match), and a final Done step ends the sequence.
//
// The step sequence obeys one global invariant, which every searcher in this
// package maintains by construction: the Match and Reject ranges, in emission
// order, are pairwise adjacent, non-overlapping, cover the whole haystack
// exactly once, and every range boundary is a valid UTF-8 character boundary.
// Consumers may therefore slice the haystack at any emitted offset without
// further checks.
//
// A Match range always spans an entire occurrence of the pattern. Reject
// ranges may be split into arbitrarily many adjacent fragments. Either kind
// of range may be empty, which matters for the empty literal pattern.
package search

import "strconv"

// Kind discriminates the three step variants. The zero value is KindDone so
// that the zero Step ends iteration.
type Kind uint8

const (
	// KindDone means every byte of the haystack has been visited.
	KindDone Kind = iota

	// KindMatch means haystack[Start:End] matches the pattern.
	KindMatch

	// KindReject means haystack[Start:End] cannot match, even partially.
	KindReject
)

// Step is the result of a single Next or NextBack call: one classified byte
// range of the haystack, or the end of iteration.
//
// Start and End delimit the half-open range [Start, End). Both are zero for
// KindDone.
type Step struct {
	Kind  Kind
	Start int
	End   int
}

// Matched returns a Match step over haystack[start:end].
func Matched(start, end int) Step {
	return Step{Kind: KindMatch, Start: start, End: end}
}

// Rejected returns a Reject step over haystack[start:end].
func Rejected(start, end int) Step {
	return Step{Kind: KindReject, Start: start, End: end}
}

// Done returns the terminal step.
func Done() Step {
	return Step{}
}

// String returns a representation of the step for debugging.
// Format: "Match(2, 5)", "Reject(0, 1)" or "Done".
func (s Step) String() string {
	switch s.Kind {
	case KindMatch:
		return "Match(" + strconv.Itoa(s.Start) + ", " + strconv.Itoa(s.End) + ")"
	case KindReject:
		return "Reject(" + strconv.Itoa(s.Start) + ", " + strconv.Itoa(s.End) + ")"
	default:
		return "Done"
	}
}
