// internal/game/engine.go
//
// Answer oracle for self-play.
// Responsibilities:
//   - Create games against a fixed answer with deterministic dimensions (6x5).
//   - Validate and apply guesses (length, alphabetic, dictionary membership).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// The solver never sees the answer; it only receives the marks produced here.
package game

import (
	"errors"
	"strings"
)

const (
	defaultRows = 6
	defaultCols = 5
)

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotAllowed   = errors.New("not in word list")
)

// Lexicon reports whether a word may be guessed.
type Lexicon interface {
	Contains(w string) bool
}

// New constructs a game against answer.
func New(answer string) *Game {
	return &Game{
		Answer:  strings.ToLower(strings.TrimSpace(answer)),
		Rows:    defaultRows,
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per‑letter marks, the new state string ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly 5 letters a–z.
//   - If lex is non-nil, the guess must be in it.
func (g *Game) ApplyGuess(guess string, lex Lexicon) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != defaultCols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if lex != nil && !lex.Contains(guess) {
		return nil, g.State(), ErrNotAllowed
	}

	marks := Evaluate(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Evaluate implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non‑hit) answer letters by letter index.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// Guess and answer must have equal length.
func Evaluate(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allHit returns true if all marks are MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}
