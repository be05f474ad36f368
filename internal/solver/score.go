package solver

import "sort"

// Ranked is a candidate and its heuristic score.
type Ranked struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Score sums the letter frequencies of word (repeats counted per occurrence)
// and divides by (WordLength - distinct letters + 1), so words with repeated
// letters rank below all-distinct words of the same raw sum.
func (m *FrequencyModel) Score(word string) float64 {
	var seen [len(Alphabet)]bool
	distinct := 0
	sum := 0
	for i := 0; i < len(word); i++ {
		j := letterIndex(word[i])
		sum += m.counts[j]
		if !seen[j] {
			seen[j] = true
			distinct++
		}
	}
	// Integer sum divided once: anagrams tie exactly.
	return float64(sum) / float64(m.total) / float64(WordLength-distinct+1)
}

// Rank scores every candidate and sorts by score descending, then word
// ascending.
func (m *FrequencyModel) Rank(candidates []string) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, w := range candidates {
		out[i] = Ranked{Word: w, Score: m.Score(w)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Top returns at most k entries of Rank(candidates).
func (m *FrequencyModel) Top(candidates []string, k int) []Ranked {
	r := m.Rank(candidates)
	if k >= 0 && len(r) > k {
		r = r[:k]
	}
	return r
}
