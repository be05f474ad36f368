package solver

// FrequencyModel holds each letter's share of all letter occurrences in the
// word set it was built from. It is computed once and never updated.
// Raw counts are kept so scores are exact for words with the same letters.
type FrequencyModel struct {
	counts [len(Alphabet)]int
	total  int
}

// NewFrequencyModel counts every letter occurrence (repeats included) across
// words and divides by the total. Words must be lowercase a–z.
func NewFrequencyModel(words []string) (*FrequencyModel, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCandidates
	}
	var counts [len(Alphabet)]int
	total := 0
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			counts[letterIndex(w[i])]++
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptyCandidates
	}

	return &FrequencyModel{counts: counts, total: total}, nil
}

// Of returns the frequency of letter l, or 0 for anything outside a–z.
func (m *FrequencyModel) Of(l byte) float64 {
	if l < 'a' || l > 'z' {
		return 0
	}
	return float64(m.counts[l-'a']) / float64(m.total)
}

// letterIndex maps a–z to 0..25 and panics on anything else.
func letterIndex(l byte) int {
	if l < 'a' || l > 'z' {
		panic("solver: letter outside a-z: " + string(l))
	}
	return int(l - 'a')
}
