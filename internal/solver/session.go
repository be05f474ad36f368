package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config is the immutable state shared by every session over one dictionary.
// Build it once with NewConfig and pass it by pointer.
type Config struct {
	Dictionary  *words.Dictionary
	Frequencies *FrequencyModel
	MaxAttempts int
	TopK        int
}

// NewConfig computes the frequency model over the whole dictionary.
func NewConfig(dict *words.Dictionary) (*Config, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyCandidates
	}
	fm, err := NewFrequencyModel(dict.Words())
	if err != nil {
		return nil, err
	}
	return &Config{
		Dictionary:  dict,
		Frequencies: fm,
		MaxAttempts: MaxAttempts,
		TopK:        TopK,
	}, nil
}

// Outcome is the result of one attempt.
type Outcome int

const (
	Continue      Outcome = iota // more attempts to go
	Solved                       // all-Green feedback or a single candidate left
	Contradiction                // no candidate survives the feedback
	Exhausted                    // attempt limit reached without a solution
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	case Exhausted:
		return "exhausted"
	default:
		return "continue"
	}
}

// MarshalText renders the outcome by name in JSON.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Session is one solve: the shrinking candidate set and the constraints that
// produced it. A Session is not safe for concurrent use.
type Session struct {
	cfg         *Config
	attempt     int // 1-based attempt currently awaiting input
	candidates  []string
	constraints *Constraints
	outcome     Outcome
	finished    bool
	answer      string
}

// NewSession starts at attempt 1 with every dictionary word as a candidate.
func NewSession(cfg *Config) *Session {
	return &Session{
		cfg:         cfg,
		attempt:     1,
		candidates:  cfg.Dictionary.Words(),
		constraints: NewConstraints(),
	}
}

// Attempt is the number of the attempt awaiting input. After the session
// finishes it stays at the last attempt made.
func (s *Session) Attempt() int { return s.attempt }

// Finished reports whether the session accepts no more attempts.
func (s *Session) Finished() bool { return s.finished }

// Outcome is the result of the latest attempt (Continue before the first).
func (s *Session) Outcome() Outcome { return s.outcome }

// Answer is the solved word, or "" unless Outcome is Solved.
func (s *Session) Answer() string { return s.answer }

// Err returns ErrContradiction once the feedback has emptied the candidates.
func (s *Session) Err() error {
	if s.outcome == Contradiction {
		return ErrContradiction
	}
	return nil
}

// Candidates returns a copy of the current candidate set.
func (s *Session) Candidates() []string {
	return append([]string(nil), s.candidates...)
}

// Remaining is the size of the current candidate set.
func (s *Session) Remaining() int { return len(s.candidates) }

// Constraints returns a copy of the current constraints.
func (s *Session) Constraints() *Constraints { return s.constraints.Clone() }

// Suggestions ranks the current candidates and returns the top entries.
func (s *Session) Suggestions() []Ranked {
	return s.cfg.Frequencies.Top(s.candidates, s.cfg.TopK)
}

// Submit validates a raw guess and raw feedback, then applies them.
// Invalid input leaves the session untouched and returns an error wrapping
// ErrInvalidGuess, ErrNotInDictionary or ErrInvalidFeedback.
func (s *Session) Submit(rawGuess, rawFeedback string) (Outcome, error) {
	if s.finished {
		return s.outcome, ErrSessionFinished
	}
	guess, err := ValidateGuess(s.cfg.Dictionary, rawGuess)
	if err != nil {
		return s.outcome, err
	}
	fb, err := ParseFeedback(rawFeedback)
	if err != nil {
		return s.outcome, err
	}
	return s.Apply(guess, fb)
}

// Apply updates the constraints from a validated guess and feedback, filters
// the current candidates and advances the attempt counter.
func (s *Session) Apply(guess string, fb Feedback) (Outcome, error) {
	if s.finished {
		return s.outcome, ErrSessionFinished
	}

	s.constraints.Apply(guess, fb)
	s.candidates = Filter(s.constraints, s.candidates)

	switch {
	case fb.AllGreen():
		s.finish(Solved, guess)
	case len(s.candidates) == 0:
		s.finish(Contradiction, "")
	case len(s.candidates) == 1:
		s.finish(Solved, s.candidates[0])
	case s.attempt >= s.cfg.MaxAttempts:
		s.finish(Exhausted, "")
	default:
		s.outcome = Continue
		s.attempt++
	}
	return s.outcome, nil
}

func (s *Session) finish(o Outcome, answer string) {
	s.outcome = o
	s.answer = answer
	s.finished = true
}
