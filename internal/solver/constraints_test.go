package solver

import (
	"slices"
	"strings"
	"testing"
)

func without(letters string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(letters, r) {
			return -1
		}
		return r
	}, Alphabet)
}

func TestNewConstraints(t *testing.T) {
	c := NewConstraints()
	for i := 0; i < WordLength; i++ {
		if got := c.AllowedAt(i); got != Alphabet {
			t.Fatalf("AllowedAt(%d) = %q, want the full alphabet", i, got)
		}
	}
}

func TestApply(t *testing.T) {
	c := NewConstraints()
	c.Apply("crane", MustParseFeedback("!Y!GG"))

	want := []string{
		without("ca"),
		without("car"),
		without("ca"),
		"n",
		"e",
	}
	for i, w := range want {
		if got := c.AllowedAt(i); got != w {
			t.Errorf("AllowedAt(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestApplyYellowIsNoOpWhenAbsent(t *testing.T) {
	c := NewConstraints()
	c.Apply("crane", MustParseFeedback("Y!!!!"))
	c.Apply("crane", MustParseFeedback("Y!!!!"))
	if got := c.AllowedAt(0); got != without("craen") {
		t.Fatalf("AllowedAt(0) = %q", got)
	}
}

func TestApplyGreenBeforeGray(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		fb    string
		want  []string
	}{
		{
			// Gray for the second 'e' must not undo the Green pin at 0.
			name:  "green then gray",
			guess: "eerie",
			fb:    "G!!!!",
			want:  []string{"e", without("eri"), without("ri"), without("ri"), without("eri")},
		},
		{
			// The Gray comes first in index order; the Green still wins.
			name:  "gray then green",
			guess: "eerie",
			fb:    "!G!!!",
			want:  []string{without("eri"), "e", without("ri"), without("ri"), without("eri")},
		},
		{
			// A Yellow 's' keeps 's' possible at positions not guessed.
			name:  "yellow with gray duplicates",
			guess: "sassy",
			fb:    "Y!!!!",
			want:  []string{without("asy"), without("ay"), without("asy"), without("asy"), without("ay")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstraints()
			c.Apply(tt.guess, MustParseFeedback(tt.fb))
			for i, w := range tt.want {
				if got := c.AllowedAt(i); got != w {
					t.Errorf("AllowedAt(%d) = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestApplyNeverGrows(t *testing.T) {
	c := NewConstraints()
	c.Apply("crane", MustParseFeedback("!!!!!"))
	before := make([]int, WordLength)
	for i := range before {
		before[i] = c.Size(i)
	}

	// 'c' is already excluded at 0, so a Green 'c' there leaves nothing.
	c.Apply("crane", MustParseFeedback("G!!!!"))
	if c.Size(0) != 0 {
		t.Fatalf("Size(0) = %d after contradictory Green, want 0", c.Size(0))
	}
	for i := range before {
		if c.Size(i) > before[i] {
			t.Fatalf("position %d grew from %d to %d", i, before[i], c.Size(i))
		}
	}
}

func TestApplyLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Apply with a 4-letter guess did not panic")
		}
	}()
	NewConstraints().Apply("cran", Feedback{})
}

func TestClone(t *testing.T) {
	c := NewConstraints()
	cp := c.Clone()
	cp.Apply("crane", MustParseFeedback("GGGGG"))
	if c.AllowedAt(0) != Alphabet {
		t.Fatalf("Apply on a clone changed the original: %s", c)
	}
	if cp.String() != "[c][r][a][n][e]" {
		t.Fatalf("String() = %s", cp)
	}
}

func TestFilterScenario(t *testing.T) {
	tests := []struct {
		fb   string
		want []string
	}{
		{fb: "!YGGG", want: []string{"plane"}},
		{fb: "!!GGG", want: []string{"plane"}},
		// Gray 'a' removes 'a' everywhere, which rules out "plane" too.
		{fb: "!Y!GG", want: []string{}},
		{fb: "GGGGG", want: []string{"crane"}},
		{fb: "!!!!!", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.fb, func(t *testing.T) {
			c := NewConstraints()
			c.Apply("crane", MustParseFeedback(tt.fb))
			in := slices.Clone(sample)
			got := Filter(c, in)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Filter after crane/%s = %q, want %q", tt.fb, got, tt.want)
			}
			if !slices.Equal(in, sample) {
				t.Fatalf("Filter modified its input: %q", in)
			}
		})
	}
}

func TestFilterSingleCandidate(t *testing.T) {
	got := Filter(NewConstraints(), []string{"plane"})
	if !slices.Equal(got, []string{"plane"}) {
		t.Fatalf("Filter of a single candidate = %q", got)
	}
}

func TestFilterProperties(t *testing.T) {
	dict := embedded(t).Words()
	const guess = "crane"

	for _, fb := range allFeedbacks() {
		c := NewConstraints()
		c.Apply(guess, fb)

		once := Filter(c, dict)
		if twice := Filter(c, once); !slices.Equal(once, twice) {
			t.Fatalf("%s: filter is not idempotent (%d then %d)", fb, len(once), len(twice))
		}
		if len(once) > len(dict) {
			t.Fatalf("%s: filter grew the set", fb)
		}

		for _, w := range once {
			for i, s := range fb {
				switch s {
				case Green:
					if w[i] != guess[i] {
						t.Fatalf("%s: %q survived without %q at %d", fb, w, guess[i], i)
					}
				case Gray:
					// crane has no repeated letters, so every Gray is unconflicted.
					if strings.IndexByte(w, guess[i]) >= 0 {
						t.Fatalf("%s: %q survived containing gray %q", fb, w, guess[i])
					}
				}
			}
		}
	}
}
