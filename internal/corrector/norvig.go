package corrector

import "sort"

// NorvigStrategy is the generate-and-filter approach from Peter Norvig's
// essay (https://norvig.com/spell-correct.html): enumerate every string
// within edit distance 1, then 2, of the token and keep the ones that are
// dictionary words. Generation cost is paid per query, dominated by the
// insertion and substitution passes over the alphabet.
type NorvigStrategy struct {
	frequencies map[string]int
	alphabet    []rune
}

// NewNorvigStrategy creates the strategy over the given frequency table.
// An empty alphabet selects DefaultAlphabet.
func NewNorvigStrategy(frequencies map[string]int, alphabet string) *NorvigStrategy {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &NorvigStrategy{
		frequencies: frequencies,
		alphabet:    []rune(alphabet),
	}
}

// Candidates returns the token itself when it is a dictionary word,
// otherwise the known words among its edit-distance-1 variants, otherwise
// among its edit-distance-2 variants, otherwise the token alone.
func (s *NorvigStrategy) Candidates(token string) []string {
	if s.frequencies[token] > 0 {
		return []string{token}
	}

	edits := s.edits1(token)
	if known := s.knownIn(edits); len(known) > 0 {
		return known
	}

	if known := s.knownIn(s.edits2FromEdits1(edits)); len(known) > 0 {
		return known
	}

	return []string{token}
}

// knownIn filters variants down to unique dictionary words, sorted.
func (s *NorvigStrategy) knownIn(variants []string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, variant := range variants {
		if s.frequencies[variant] <= 0 {
			continue
		}
		if _, dup := seen[variant]; dup {
			continue
		}
		seen[variant] = struct{}{}
		words = append(words, variant)
	}
	sort.Strings(words)
	return words
}

// edits1 generates every string at Damerau-Levenshtein distance 1 from the
// token under the configured alphabet. The token is split at every boundary
// into (left, right); each split contributes a deletion, a transposition of
// the two characters after the split, and one insertion plus one
// substitution per alphabet character.
func (s *NorvigStrategy) edits1(token string) []string {
	runes := []rune(token)
	variants := make([]string, 0, (len(runes)+1)*(2*len(s.alphabet)+2))

	for i := 0; i <= len(runes); i++ {
		left, right := string(runes[:i]), runes[i:]

		if len(right) > 0 {
			variants = append(variants, left+string(right[1:]))
		}
		if len(right) > 1 {
			variants = append(variants, left+string(right[1])+string(right[0])+string(right[2:]))
		}
		for _, ch := range s.alphabet {
			variants = append(variants, left+string(ch)+string(right))
			if len(right) > 0 {
				variants = append(variants, left+string(ch)+string(right[1:]))
			}
		}
	}

	return variants
}

// edits2FromEdits1 composes two edit-distance-1 steps. Quadratic in the
// edits1 output size; duplicates and the original token may appear, which
// is harmless since knownIn dedupes.
func (s *NorvigStrategy) edits2FromEdits1(edits []string) []string {
	var variants []string
	for _, edit := range edits {
		variants = append(variants, s.edits1(edit)...)
	}
	return variants
}
