package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newSession(t *testing.T) (*solver.Session, *words.Dictionary) {
	t.Helper()
	d, err := words.New([]string{"crane", "slate", "trace", "plane", "fuzzy"})
	if err != nil {
		t.Fatalf("words.New: %v", err)
	}
	cfg, err := solver.NewConfig(d)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return solver.NewSession(cfg), d
}

func newConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out)
	c.Color = false
	return c, &out
}

func TestReadGuessRetries(t *testing.T) {
	_, d := newSession(t)
	c, out := newConsole("cran\nhouse\n CRANE \n")

	got, err := c.ReadGuess(d)
	if err != nil {
		t.Fatalf("ReadGuess: %v", err)
	}
	if got != "crane" {
		t.Fatalf("ReadGuess = %q, want crane", got)
	}
	if n := strings.Count(out.String(), "The wordle Word: "); n != 3 {
		t.Fatalf("prompted %d times, want 3:\n%s", n, out)
	}
	if !strings.Contains(out.String(), `Invalid word "house"`) {
		t.Fatalf("missing rejection message:\n%s", out)
	}
}

func TestReadFeedbackRetries(t *testing.T) {
	c, out := newConsole("GGG\nGGXGG\n!yGgg\n")
	fb, err := c.ReadFeedback()
	if err != nil {
		t.Fatalf("ReadFeedback: %v", err)
	}
	if fb.String() != "!YGGG" {
		t.Fatalf("ReadFeedback = %s", fb)
	}
	if n := strings.Count(out.String(), "Invalid answer"); n != 2 {
		t.Fatalf("%d rejections, want 2:\n%s", n, out)
	}
	for _, reason := range []string{`must be 5 symbols of G, Y or !: got "GGG"`, "bad symbol 'X' at position 3"} {
		if !strings.Contains(out.String(), reason) {
			t.Fatalf("rejection output missing %q:\n%s", reason, out)
		}
	}
}

func TestReadEOF(t *testing.T) {
	_, d := newSession(t)
	c, _ := newConsole("cran\n")
	if _, err := c.ReadGuess(d); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadGuess at EOF: err = %v", err)
	}
}

func TestTable(t *testing.T) {
	c, out := newConsole("")
	c.Table([]solver.Ranked{{Word: "crane", Score: 0.7}, {Word: "plane", Score: 0.65}})
	want := "crane      |  0.70\nplane      |  0.65\n"
	if out.String() != want {
		t.Fatalf("Table wrote %q, want %q", out.String(), want)
	}
}

func TestRunSolved(t *testing.T) {
	s, d := newSession(t)
	c, out := newConsole("crane\n!YGGG\n")
	if err := c.Run(s, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{"Attempt 1 with 5 possible words", "crane  !YGGG", "Solved: plane"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunContradiction(t *testing.T) {
	s, d := newSession(t)
	c, out := newConsole("crane\n!Y!GG\n")
	if err := c.Run(s, d); !errors.Is(err, solver.ErrContradiction) {
		t.Fatalf("Run err = %v, want ErrContradiction", err)
	}
	if !strings.Contains(out.String(), "No words match") {
		t.Fatalf("contradiction not reported:\n%s", out)
	}
}

func TestRunExhausted(t *testing.T) {
	s, d := newSession(t)
	c, out := newConsole(strings.Repeat("fuzzy\n!!!!!\n", solver.MaxAttempts))
	if err := c.Run(s, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Out of attempts with 4 possible words left") {
		t.Fatalf("exhaustion not reported:\n%s", out)
	}
}
