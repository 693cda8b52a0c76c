package corrector

import "sort"

// SymDeleteStrategy implements symmetric-delete correction: at construction
// it indexes every delete-1 and delete-2 variant of every dictionary word
// back to the words that produced it. Queries then only generate deletions
// of the input token and look them up, never touching an alphabet. The
// index is the per-dictionary-word cost paid once instead of the
// per-query generation cost of NorvigStrategy.
type SymDeleteStrategy struct {
	frequencies map[string]int
	index       map[string]map[string]struct{}
}

// NewSymDeleteStrategy builds the deletion index over every word in the
// frequency table with a positive count. The index is immutable afterwards.
func NewSymDeleteStrategy(frequencies map[string]int) *SymDeleteStrategy {
	s := &SymDeleteStrategy{
		frequencies: frequencies,
		index:       make(map[string]map[string]struct{}),
	}

	for word, count := range frequencies {
		if count <= 0 {
			continue
		}
		for _, variant := range deletes1(word) {
			s.addToIndex(variant, word)
			for _, variant2 := range deletes1(variant) {
				s.addToIndex(variant2, word)
			}
		}
	}

	return s
}

func (s *SymDeleteStrategy) addToIndex(variant, word string) {
	bucket := s.index[variant]
	if bucket == nil {
		bucket = make(map[string]struct{})
		s.index[variant] = bucket
	}
	bucket[word] = struct{}{}
}

// IndexSize returns the number of deletion-variant keys in the index.
func (s *SymDeleteStrategy) IndexSize() int {
	return len(s.index)
}

// Candidates resolves the token in stages: exact dictionary hit, then the
// bucket keyed by the literal token (dictionary words one or two deletions
// away from it), then the union of buckets for the token's own delete-1
// variants, then for its delete-2 variants. Because the index already
// encodes each word's deletions, looking up the token's deletions covers
// both edit directions. The final stage may come up empty; the engine
// falls back to the literal token in that case.
func (s *SymDeleteStrategy) Candidates(token string) []string {
	if s.frequencies[token] > 0 {
		return []string{token}
	}

	if bucket, ok := s.index[token]; ok {
		return sortedWords(bucket)
	}

	variants := deletes1(token)
	if words := s.lookupAll(variants); len(words) > 0 {
		return words
	}

	var variants2 []string
	for _, variant := range variants {
		variants2 = append(variants2, deletes1(variant)...)
	}
	return s.lookupAll(variants2)
}

// lookupAll unions the index buckets of all variants into a sorted word list.
func (s *SymDeleteStrategy) lookupAll(variants []string) []string {
	merged := make(map[string]struct{})
	for _, variant := range variants {
		for word := range s.index[variant] {
			merged[word] = struct{}{}
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return sortedWords(merged)
}

// deletes1 returns every string obtained by removing exactly one character.
func deletes1(word string) []string {
	runes := []rune(word)
	variants := make([]string, 0, len(runes))
	for i := range runes {
		variants = append(variants, string(runes[:i])+string(runes[i+1:]))
	}
	return variants
}

func sortedWords(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for word := range set {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
