// internal/solver/solver.go
//
// Package solver narrows a five-letter word puzzle's candidate set from
// per-letter feedback and ranks the remaining words by a letter-frequency
// heuristic.
//
// Pieces, leaves first:
//   - FrequencyModel: per-letter relative frequency over the initial words.
//   - Score/Rank:     heuristic ranking of any candidate subset.
//   - Constraints:    five allowed-letter sets tightened from feedback.
//   - Filter:         prunes candidates against Constraints.
//   - Session:        turn-based solve loop tying the above together.
//
// The package does no I/O. Prompting, retries and display belong to callers
// (see internal/console and internal/httpserver).
package solver

import "errors"

const (
	WordLength  = 5  // letters per word
	MaxAttempts = 6  // attempts per session
	TopK        = 15 // suggestions exposed per attempt
	Alphabet    = "abcdefghijklmnopqrstuvwxyz"
)

var (
	// ErrInvalidGuess: guess is not five letters a–z.
	ErrInvalidGuess = errors.New("guess must be 5 letters")
	// ErrNotInDictionary: guess is well formed but unknown.
	ErrNotInDictionary = errors.New("guess is not in the dictionary")
	// ErrInvalidFeedback: feedback is not five G/Y/! symbols.
	ErrInvalidFeedback = errors.New("feedback must be 5 symbols of G, Y or !")
	// ErrEmptyCandidates: a frequency model needs at least one word.
	ErrEmptyCandidates = errors.New("solver: empty candidate set")
	// ErrContradiction: the feedback so far leaves no candidate.
	ErrContradiction = errors.New("solver: feedback is contradictory, no candidates left")
	// ErrSessionFinished: the session accepts no more attempts.
	ErrSessionFinished = errors.New("solver: session finished")
)
