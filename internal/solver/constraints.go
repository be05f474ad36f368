package solver

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Constraints is the per-position set of letters still considered possible.
// Bit i of a position's set stands for letter 'a'+i. Sets only ever shrink.
type Constraints struct {
	allowed [WordLength]*bitset.BitSet
}

// NewConstraints returns constraints allowing every letter everywhere.
func NewConstraints() *Constraints {
	c := &Constraints{}
	for i := range c.allowed {
		c.allowed[i] = bitset.New(uint(len(Alphabet))).Complement()
	}
	return c
}

// Apply tightens the constraints from one guess and its feedback:
//
//   - Green:  position i keeps only guess[i].
//   - Yellow: guess[i] is removed from position i.
//   - Gray:   guess[i] is removed from every position.
//
// Green and Yellow symbols are applied first. A Gray symbol for a letter that
// the same response marks Green or Yellow elsewhere only removes the letter
// from its own position, so repeated letters cannot purge a position pinned
// by this response.
//
// Apply panics if guess is not WordLength letters a–z.
func (c *Constraints) Apply(guess string, fb Feedback) {
	if len(guess) != len(c.allowed) {
		panic(fmt.Sprintf("solver: guess %q has length %d, constraints have %d positions", guess, len(guess), len(c.allowed)))
	}

	var present [len(Alphabet)]bool
	for i, s := range fb {
		l := uint(letterIndex(guess[i]))
		switch s {
		case Green:
			keep := c.allowed[i].Test(l)
			c.allowed[i].ClearAll()
			if keep {
				c.allowed[i].Set(l)
			}
			present[l] = true
		case Yellow:
			c.allowed[i].Clear(l)
			present[l] = true
		}
	}

	for i, s := range fb {
		if s != Gray {
			continue
		}
		l := uint(letterIndex(guess[i]))
		if present[l] {
			c.allowed[i].Clear(l)
			continue
		}
		for _, set := range c.allowed {
			set.Clear(l)
		}
	}
}

// Allows reports whether every letter of word is allowed at its position.
// It panics if word is not WordLength long.
func (c *Constraints) Allows(word string) bool {
	if len(word) != len(c.allowed) {
		panic(fmt.Sprintf("solver: word %q has length %d, constraints have %d positions", word, len(word), len(c.allowed)))
	}
	for i := 0; i < len(word); i++ {
		l := word[i]
		if l < 'a' || l > 'z' || !c.allowed[i].Test(uint(l-'a')) {
			return false
		}
	}
	return true
}

// AllowedAt returns the letters still allowed at position i, in order.
func (c *Constraints) AllowedAt(i int) string {
	var b strings.Builder
	for l, ok := c.allowed[i].NextSet(0); ok; l, ok = c.allowed[i].NextSet(l + 1) {
		b.WriteByte(Alphabet[l])
	}
	return b.String()
}

// Size returns how many letters are still allowed at position i.
func (c *Constraints) Size(i int) int {
	return int(c.allowed[i].Count())
}

// Clone returns an independent copy.
func (c *Constraints) Clone() *Constraints {
	out := &Constraints{}
	for i, set := range c.allowed {
		out.allowed[i] = set.Clone()
	}
	return out
}

func (c *Constraints) String() string {
	parts := make([]string, len(c.allowed))
	for i := range c.allowed {
		parts[i] = "[" + c.AllowedAt(i) + "]"
	}
	return strings.Join(parts, "")
}
