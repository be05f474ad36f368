package solver

import (
	"context"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var sample = []string{"crane", "slate", "trace", "plane"}

func mustDict(t *testing.T, ws ...string) *words.Dictionary {
	t.Helper()
	d, err := words.New(ws)
	if err != nil {
		t.Fatalf("words.New(%q): %v", ws, err)
	}
	return d
}

func mustConfig(t *testing.T, d *words.Dictionary) *Config {
	t.Helper()
	cfg, err := NewConfig(d)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func embedded(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Load(context.Background(), words.Source{})
	if err != nil {
		t.Fatalf("load embedded dictionary: %v", err)
	}
	return d
}

// allFeedbacks enumerates every one of the 3^5 feedback strings.
func allFeedbacks() []Feedback {
	out := []Feedback{{}}
	for i := 0; i < WordLength; i++ {
		next := make([]Feedback, 0, len(out)*3)
		for _, fb := range out {
			for _, s := range []Symbol{Gray, Yellow, Green} {
				f := fb
				f[i] = s
				next = append(next, f)
			}
		}
		out = next
	}
	return out
}
