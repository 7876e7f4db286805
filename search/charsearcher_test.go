package search

import (
	"reflect"
	"testing"
	"unicode"

	"github.com/coregx/strsearch/charmatch"
)

func TestCharSearcherForward(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		matcher  charmatch.Matcher
		want     []Step
	}{
		{
			name:     "single char ascii",
			haystack: "abc",
			matcher:  charmatch.Rune('b'),
			want:     []Step{Rejected(0, 1), Matched(1, 2), Rejected(2, 3)},
		},
		{
			name:     "multi-byte match",
			haystack: "aéz",
			matcher:  charmatch.Rune('é'),
			want:     []Step{Rejected(0, 1), Matched(1, 3), Rejected(3, 4)},
		},
		{
			name:     "set over mixed widths",
			haystack: "x日y",
			matcher:  charmatch.NewSet("日y"),
			want:     []Step{Rejected(0, 1), Matched(1, 4), Matched(4, 5)},
		},
		{
			name:     "predicate",
			haystack: "a1b",
			matcher:  charmatch.Func(unicode.IsDigit),
			want:     []Step{Rejected(0, 1), Matched(1, 2), Rejected(2, 3)},
		},
		{
			name:     "empty haystack",
			haystack: "",
			matcher:  charmatch.Rune('a'),
			want:     nil,
		},
		{
			name:     "all match",
			haystack: "aaa",
			matcher:  charmatch.Rune('a'),
			want:     []Step{Matched(0, 1), Matched(1, 2), Matched(2, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, NewCharSearcher(tt.haystack, tt.matcher))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("steps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSearcherBackward(t *testing.T) {
	s := NewCharSearcher("aéz", charmatch.Rune('é'))
	want := []Step{Rejected(3, 4), Matched(1, 3), Rejected(0, 1)}
	if got := collectBack(t, s); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

// TestCharSearcherBothEnds drives one searcher from both ends and checks the
// cursors converge without crossing or revisiting a byte.
func TestCharSearcherBothEnds(t *testing.T) {
	h := "ab日ba"
	s := NewCharSearcher(h, charmatch.Rune('a'))

	steps := []Step{
		s.Next(),     // a
		s.NextBack(), // a
		s.Next(),     // b
		s.NextBack(), // b
		s.Next(),     // 日
	}
	want := []Step{
		Matched(0, 1),
		Matched(6, 7),
		Rejected(1, 2),
		Rejected(5, 6),
		Rejected(2, 5),
	}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("steps = %v, want %v", steps, want)
	}

	if got := s.Next(); got.Kind != KindDone {
		t.Errorf("Next() after convergence = %v, want Done", got)
	}
	if got := s.NextBack(); got.Kind != KindDone {
		t.Errorf("NextBack() after convergence = %v, want Done", got)
	}
}

func TestCharSearcherHaystack(t *testing.T) {
	s := NewCharSearcher("abc", charmatch.Rune('a'))
	if got := s.Haystack(); got != "abc" {
		t.Errorf("Haystack() = %q, want %q", got, "abc")
	}
	s.Next()
	if got := s.Haystack(); got != "abc" {
		t.Errorf("Haystack() after stepping = %q, want %q", got, "abc")
	}
}

// CharSearcher must advertise the double-ended capability.
var _ DoubleEndedSearcher = (*CharSearcher)(nil)
