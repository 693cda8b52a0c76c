package corrector

import (
	"sort"

	"github.com/sajari/fuzzy"
)

// FuzzyStrategy adapts a sajari/fuzzy model to the Strategy contract. The
// model is trained once from the frequency table; suggestions are filtered
// back against the table so only dictionary words survive.
type FuzzyStrategy struct {
	frequencies map[string]int
	model       *fuzzy.Model
}

// NewFuzzyStrategy trains a fuzzy model over every word in the frequency
// table with a positive count.
func NewFuzzyStrategy(frequencies map[string]int) *FuzzyStrategy {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	for word, count := range frequencies {
		if count > 0 {
			model.SetCount(word, count, true)
		}
	}

	return &FuzzyStrategy{
		frequencies: frequencies,
		model:       model,
	}
}

// Candidates short-circuits on dictionary words, matching the other
// strategies, and otherwise returns the model's known suggestions sorted.
func (s *FuzzyStrategy) Candidates(token string) []string {
	if s.frequencies[token] > 0 {
		return []string{token}
	}

	seen := make(map[string]struct{})
	var words []string
	for _, suggestion := range s.model.Suggestions(token, false) {
		if s.frequencies[suggestion] <= 0 {
			continue
		}
		if _, dup := seen[suggestion]; dup {
			continue
		}
		seen[suggestion] = struct{}{}
		words = append(words, suggestion)
	}
	sort.Strings(words)
	return words
}
