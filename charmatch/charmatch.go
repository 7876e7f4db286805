// Package charmatch provides the character classifier capability used by
// character-oriented searchers.
//
// A classifier answers a single question: does this character match the
// pattern? Three classifiers are provided:
//   - Rune: matches one specific character
//   - Set: matches any character from a set
//   - Func: matches characters accepted by an arbitrary predicate
//
// Classifiers additionally report whether every character they could ever
// match is a single-byte (ASCII) character. This is an optimization hint for
// callers, never a correctness requirement.
//
// Example:
//
//	m := charmatch.NewSet("+-*/")
//	m.Matches('+') // true
//	m.Matches('x') // false
//	m.ASCIIOnly()  // true
package charmatch

import "unicode/utf8"

// Matcher classifies single characters.
//
// Matches reports whether r matches. ASCIIOnly reports whether every
// character the classifier could possibly match is representable in a single
// byte; it may conservatively return false.
type Matcher interface {
	Matches(r rune) bool
	ASCIIOnly() bool
}

// Rune matches exactly one character.
type Rune rune

// Matches reports whether r equals the classifier's character.
func (m Rune) Matches(r rune) bool { return rune(m) == r }

// ASCIIOnly reports whether the character is a single-byte character.
func (m Rune) ASCIIOnly() bool { return m < utf8.RuneSelf }

// Set matches any character belonging to a fixed set.
//
// ASCII members are kept in a membership table for O(1) lookup; non-ASCII
// members are kept in a slice and scanned linearly. Character sets are small
// in practice (trim cutsets, delimiter lists), so the linear scan is fine.
type Set struct {
	ascii [utf8.RuneSelf]bool
	wide  []rune
}

// NewSet builds a Set from the characters of chars. Duplicates are harmless.
func NewSet(chars string) *Set {
	s := &Set{}
	for _, r := range chars {
		if r < utf8.RuneSelf {
			s.ascii[r] = true
		} else {
			s.wide = append(s.wide, r)
		}
	}
	return s
}

// Matches reports whether r is a member of the set.
func (s *Set) Matches(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii[r]
	}
	for _, w := range s.wide {
		if w == r {
			return true
		}
	}
	return false
}

// ASCIIOnly reports whether every member of the set is a single-byte
// character. An empty set is vacuously ASCII-only.
func (s *Set) ASCIIOnly() bool { return len(s.wide) == 0 }

// Func matches characters accepted by a predicate.
//
// The predicate is opaque, so ASCIIOnly always reports false. A predicate
// that closes over mutable state is shared by every searcher built from it.
type Func func(rune) bool

// Matches reports whether the predicate accepts r.
func (f Func) Matches(r rune) bool { return f(r) }

// ASCIIOnly always reports false: the predicate's domain is unknown.
func (Func) ASCIIOnly() bool { return false }
