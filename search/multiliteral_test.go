package search

import (
	"reflect"
	"testing"

	"github.com/coregx/ahocorasick"
)

func buildAutomaton(t *testing.T, alternatives []string) *ahocorasick.Automaton {
	t.Helper()
	builder := ahocorasick.NewBuilder()
	for _, alt := range alternatives {
		builder.AddPattern([]byte(alt))
	}
	auto, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return auto
}

func TestMultiLiteralSequential(t *testing.T) {
	tests := []struct {
		name         string
		haystack     string
		alternatives []string
		want         []Step
	}{
		{
			name:         "two alternatives",
			haystack:     "cbaz",
			alternatives: []string{"ba", "zz"},
			want:         []Step{Rejected(0, 1), Matched(1, 3), Rejected(3, 4)},
		},
		{
			name:         "earlier alternative wins at same position",
			haystack:     "abc",
			alternatives: []string{"ab", "abc"},
			want:         []Step{Matched(0, 2), Rejected(2, 3)},
		},
		{
			name:         "adjacent matches",
			haystack:     "catdog",
			alternatives: []string{"cat", "dog"},
			want:         []Step{Matched(0, 3), Matched(3, 6)},
		},
		{
			name:         "no match rejects characters",
			haystack:     "日x",
			alternatives: []string{"cat"},
			want:         []Step{Rejected(0, 3), Rejected(3, 4)},
		},
		{
			name:         "empty haystack",
			haystack:     "",
			alternatives: []string{"cat"},
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, NewMultiLiteralSearcher(tt.haystack, tt.alternatives))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("steps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiLiteralAutomaton(t *testing.T) {
	tests := []struct {
		name         string
		haystack     string
		alternatives []string
		want         []Step
	}{
		{
			name:         "gap then match then tail",
			haystack:     "cbaz",
			alternatives: []string{"ba", "zz"},
			want:         []Step{Rejected(0, 1), Matched(1, 3), Rejected(3, 4)},
		},
		{
			name:         "match at start",
			haystack:     "catdog",
			alternatives: []string{"cat", "dog"},
			want:         []Step{Matched(0, 3), Matched(3, 6)},
		},
		{
			name:         "single trailing reject",
			haystack:     "xyz",
			alternatives: []string{"cat", "dog"},
			want:         []Step{Rejected(0, 3)},
		},
		{
			name:         "empty haystack",
			haystack:     "",
			alternatives: []string{"cat"},
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auto := buildAutomaton(t, tt.alternatives)
			got := collect(t, NewAutomatonSearcher(tt.haystack, auto))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("steps = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMultiLiteralStrategiesAgreeOnMatches checks that both strategies find
// the same match ranges even though their Reject granularity differs.
func TestMultiLiteralStrategiesAgreeOnMatches(t *testing.T) {
	haystacks := []string{"", "cat", "a cat, a dog", "catcatdog", "日本cat語"}
	alternatives := []string{"cat", "dog", "本"}
	auto := buildAutomaton(t, alternatives)

	matchesOf := func(steps []Step) []Step {
		var out []Step
		for _, s := range steps {
			if s.Kind == KindMatch {
				out = append(out, s)
			}
		}
		return out
	}

	for _, h := range haystacks {
		seq := collect(t, NewMultiLiteralSearcher(h, alternatives))
		aut := collect(t, NewAutomatonSearcher(h, auto))

		checkPartition(t, h, seq, false)
		checkPartition(t, h, aut, false)

		if got, want := matchesOf(aut), matchesOf(seq); !reflect.DeepEqual(got, want) {
			t.Errorf("haystack %q: automaton matches %v, sequential matches %v", h, got, want)
		}
	}
}

func TestMultiLiteralForwardOnly(t *testing.T) {
	var s Searcher = NewMultiLiteralSearcher("cat", []string{"cat"})
	if _, ok := s.(ReverseSearcher); ok {
		t.Error("MultiLiteralSearcher must not be a ReverseSearcher")
	}
}

func TestMultiLiteralDoneStaysDone(t *testing.T) {
	s := NewMultiLiteralSearcher("cat", []string{"cat"})
	collect(t, s)
	if got := s.Next(); got.Kind != KindDone {
		t.Errorf("Next() after Done = %v, want Done", got)
	}
}
