// internal/console/console.go
//
// Terminal collaborators for the solver.
// Responsibilities:
//   - Prompt for a guess and a feedback string, re-prompting on invalid input
//     using the solver's validation predicates.
//   - Render the top suggestions as a two-column table.
//   - Drive a Session from the first attempt to its outcome (Run).
//
// Feedback codes shown to the user:
//   G for Green, Y for Yellow, ! for Gray.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Console reads answers from in and writes prompts and tables to out.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	Color bool // colorize the feedback echo
}

// New returns a Console over r and w with colors enabled.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewScanner(r), out: w, Color: true}
}

// readLine prints prompt and returns the next input line.
// Returns io.ErrUnexpectedEOF when input ends.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return c.in.Text(), nil
}

// ReadGuess prompts until the user enters a five-letter dictionary word.
func (c *Console) ReadGuess(lex solver.Lexicon) (string, error) {
	for {
		raw, err := c.readLine("The wordle Word: ")
		if err != nil {
			return "", err
		}
		w, err := solver.ValidateGuess(lex, raw)
		if err == nil {
			return w, nil
		}
		fmt.Fprintf(c.out, "Invalid word %q: %v\n", strings.TrimSpace(raw), cause(err))
	}
}

// ReadFeedback prompts until the user enters five G/Y/! symbols.
func (c *Console) ReadFeedback() (solver.Feedback, error) {
	fmt.Fprintln(c.out, "Enter color code from Wordle")
	fmt.Fprintln(c.out, " G for Green")
	fmt.Fprintln(c.out, " Y for Yellow")
	fmt.Fprintln(c.out, " ! for Gray")
	for {
		raw, err := c.readLine("Wordle response: ")
		if err != nil {
			return solver.Feedback{}, err
		}
		fb, err := solver.ParseFeedback(raw)
		if err == nil {
			return fb, nil
		}
		fmt.Fprintf(c.out, "Invalid answer %q: %v\n", strings.TrimSpace(raw), err)
	}
}

// Table writes one "word | score" line per entry.
func (c *Console) Table(ranked []solver.Ranked) {
	for _, r := range ranked {
		fmt.Fprintf(c.out, "%-10s | %5.2f\n", r.Word, r.Score)
	}
}

// Echo writes guess with each letter tinted by its feedback symbol.
func (c *Console) Echo(guess string, fb solver.Feedback) {
	if !c.Color {
		fmt.Fprintf(c.out, "%s  %s\n", guess, fb)
		return
	}
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		b.WriteString(color.Ize(tint(fb[i]), strings.ToUpper(guess[i:i+1])))
	}
	fmt.Fprintln(c.out, b.String())
}

// Run plays s until it finishes and reports the outcome.
// Returns solver.ErrContradiction if the feedback emptied the candidates.
func (c *Console) Run(s *solver.Session, lex solver.Lexicon) error {
	for !s.Finished() {
		fmt.Fprintf(c.out, "Attempt %d with %d possible words\n", s.Attempt(), s.Remaining())
		c.Table(s.Suggestions())

		guess, err := c.ReadGuess(lex)
		if err != nil {
			return err
		}
		fb, err := c.ReadFeedback()
		if err != nil {
			return err
		}
		c.Echo(guess, fb)

		out, err := s.Apply(guess, fb)
		if err != nil {
			return err
		}
		log.Debug().Int("attempt", s.Attempt()).Int("candidates", s.Remaining()).Str("outcome", out.String()).Msg("attempt applied")
	}

	switch s.Outcome() {
	case solver.Solved:
		fmt.Fprintf(c.out, "Solved: %s\n", c.paint(color.Green, s.Answer()))
	case solver.Contradiction:
		fmt.Fprintln(c.out, c.paint(color.Red, "No words match that feedback; check the responses entered."))
	case solver.Exhausted:
		fmt.Fprintf(c.out, "Out of attempts with %d possible words left\n", s.Remaining())
		c.Table(s.Suggestions())
	}
	return s.Err()
}

func (c *Console) paint(col, s string) string {
	if !c.Color {
		return s
	}
	return color.Ize(col, s)
}

func tint(s solver.Symbol) string {
	switch s {
	case solver.Green:
		return color.Green
	case solver.Yellow:
		return color.Yellow
	default:
		return color.Gray
	}
}

// cause strips the wrapped detail from a validation error for display.
func cause(err error) error {
	for _, e := range []error{solver.ErrNotInDictionary, solver.ErrInvalidGuess} {
		if errors.Is(err, e) {
			return e
		}
	}
	return err
}
