package solver

import (
	"fmt"
	"strings"
)

// Symbol is the per-letter feedback for one guess position.
type Symbol uint8

const (
	Gray   Symbol = iota // letter absent from the answer
	Yellow               // letter present, not at this position
	Green                // letter at this position
)

func (s Symbol) String() string {
	switch s {
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "!"
	}
}

// Feedback is the response to one guess, one Symbol per position.
type Feedback [WordLength]Symbol

// ParseFeedback validates raw and converts it to a Feedback.
// Accepted symbols: G/g Green, Y/y Yellow, and !, . or - for Gray.
// Surrounding whitespace is ignored.
func ParseFeedback(raw string) (Feedback, error) {
	var fb Feedback
	raw = strings.TrimSpace(raw)
	if len(raw) != WordLength {
		return fb, fmt.Errorf("%w: got %q", ErrInvalidFeedback, raw)
	}
	for i := 0; i < WordLength; i++ {
		switch raw[i] {
		case 'G', 'g':
			fb[i] = Green
		case 'Y', 'y':
			fb[i] = Yellow
		case '!', '.', '-':
			fb[i] = Gray
		default:
			return fb, fmt.Errorf("%w: bad symbol %q at position %d", ErrInvalidFeedback, raw[i], i+1)
		}
	}
	return fb, nil
}

// MustParseFeedback is ParseFeedback that panics on error. For literals.
func MustParseFeedback(raw string) Feedback {
	fb, err := ParseFeedback(raw)
	if err != nil {
		panic(err)
	}
	return fb
}

// AllGreen reports whether every position is Green.
func (f Feedback) AllGreen() bool {
	for _, s := range f {
		if s != Green {
			return false
		}
	}
	return true
}

func (f Feedback) String() string {
	var b strings.Builder
	for _, s := range f {
		b.WriteString(s.String())
	}
	return b.String()
}

// MarshalText renders the feedback as its G/Y/! string in JSON.
func (f Feedback) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// Lexicon reports dictionary membership.
type Lexicon interface {
	Contains(w string) bool
}

// ValidateGuess normalises raw and checks it is a five-letter word in lex.
// The full dictionary is the reference, not the current candidate set.
func ValidateGuess(lex Lexicon, raw string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if len(w) != WordLength {
		return "", fmt.Errorf("%w: got %q", ErrInvalidGuess, raw)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", fmt.Errorf("%w: got %q", ErrInvalidGuess, raw)
		}
	}
	if !lex.Contains(w) {
		return "", fmt.Errorf("%w: %q", ErrNotInDictionary, w)
	}
	return w, nil
}
