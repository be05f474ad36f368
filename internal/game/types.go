// internal/game/types.go
//
// Types for the answer oracle.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Game: an answer plus the guesses evaluated against it so far.

package game

// Mark represents the evaluation result for a single letter in a guess.
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or all copies are used up).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Game holds the state of one game against a known answer.
type Game struct {
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed.
	Guesses  []string // Guesses evaluated so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the last guess matched the answer.
}
