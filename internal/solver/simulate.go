package solver

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Step records one simulated attempt.
type Step struct {
	Attempt   int      `json:"attempt"`
	Guess     string   `json:"guess"`
	Feedback  Feedback `json:"feedback"`
	Remaining int      `json:"remaining"`
}

// Transcript is the full record of a simulated solve.
type Transcript struct {
	Answer  string  `json:"answer"`
	Steps   []Step  `json:"steps"`
	Outcome Outcome `json:"outcome"`
	Found   string  `json:"found,omitempty"`
}

// FeedbackFromMarks converts oracle marks into Feedback.
func FeedbackFromMarks(marks []game.Mark) (Feedback, error) {
	var fb Feedback
	if len(marks) != WordLength {
		return fb, fmt.Errorf("%w: %d marks", ErrInvalidFeedback, len(marks))
	}
	for i, m := range marks {
		switch m {
		case game.MarkHit:
			fb[i] = Green
		case game.MarkPresent:
			fb[i] = Yellow
		case game.MarkMiss:
			fb[i] = Gray
		default:
			return fb, fmt.Errorf("%w: unknown mark %q", ErrInvalidFeedback, m)
		}
	}
	return fb, nil
}

// Simulate plays a session against answer, always guessing the top-ranked
// candidate and taking feedback from the game oracle.
func Simulate(cfg *Config, answer string) (*Transcript, error) {
	answer, err := ValidateGuess(cfg.Dictionary, answer)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	g := game.New(answer)
	s := NewSession(cfg)
	t := &Transcript{Answer: answer}

	for !s.Finished() {
		top := s.Suggestions()
		if len(top) == 0 {
			break
		}
		guess := top[0].Word

		marks, _, err := g.ApplyGuess(guess, cfg.Dictionary)
		if err != nil {
			return t, fmt.Errorf("attempt %d: %w", s.Attempt(), err)
		}
		fb, err := FeedbackFromMarks(marks)
		if err != nil {
			return t, err
		}

		attempt := s.Attempt()
		if _, err := s.Apply(guess, fb); err != nil {
			return t, err
		}
		t.Steps = append(t.Steps, Step{
			Attempt:   attempt,
			Guess:     guess,
			Feedback:  fb,
			Remaining: s.Remaining(),
		})
	}

	t.Outcome = s.Outcome()
	t.Found = s.Answer()
	return t, s.Err()
}
