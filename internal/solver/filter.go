package solver

// Filter returns the candidates c allows, in their original order.
// The input slice is not modified.
func Filter(c *Constraints, candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if c.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
