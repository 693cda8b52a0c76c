package corrector

import (
	"strings"
)

// DefaultAlphabet is the character set tried for insertions and substitutions
// during edit generation: lowercase ASCII letters, digits, printable
// punctuation and space.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// Tokenizer splits a lowercased utterance into tokens.
type Tokenizer func(utterance string) []string

// Retokenizer reassembles corrected tokens into an utterance.
type Retokenizer func(tokens []string) string

// Strategy produces the dictionary words considered as corrections for a
// token. Implementations must return candidates in a stable (sorted) order
// so that equal-frequency ties resolve the same way on every run. An empty
// result means the token has no known correction; the engine falls back to
// the token itself.
type Strategy interface {
	Candidates(token string) []string
}

// Corrector corrects utterances token by token, ranking the candidates
// supplied by its strategy by corpus frequency. The frequency table is
// treated as immutable after construction, so a Corrector is safe for
// concurrent use.
type Corrector struct {
	frequencies map[string]int
	strategy    Strategy
	tokenizer   Tokenizer
	retokenizer Retokenizer
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithTokenizer replaces the default whitespace tokenizer.
func WithTokenizer(tokenizer Tokenizer) Option {
	return func(c *Corrector) {
		c.tokenizer = tokenizer
	}
}

// WithRetokenizer replaces the default single-space join.
func WithRetokenizer(retokenizer Retokenizer) Option {
	return func(c *Corrector) {
		c.retokenizer = retokenizer
	}
}

// New creates a Corrector over the given frequency table and candidate
// strategy. The table keys are trusted to be lowercase already.
func New(frequencies map[string]int, strategy Strategy, opts ...Option) *Corrector {
	c := &Corrector{
		frequencies: frequencies,
		strategy:    strategy,
		tokenizer: func(utterance string) []string {
			return strings.Fields(utterance)
		},
		retokenizer: func(tokens []string) string {
			return strings.Join(tokens, " ")
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Correct lowercases the utterance, corrects each token independently and
// reassembles the result.
func (c *Corrector) Correct(utterance string) string {
	_, corrected := c.CorrectTokens(utterance)
	return c.retokenizer(corrected)
}

// CorrectTokens lowercases and tokenizes the utterance and returns the
// tokens alongside their corrections, index for index.
func (c *Corrector) CorrectTokens(utterance string) (tokens, corrected []string) {
	tokens = c.tokenizer(strings.ToLower(utterance))
	corrected = make([]string, len(tokens))
	for i, token := range tokens {
		corrected[i] = c.CorrectToken(token)
	}
	return tokens, corrected
}

// Retokenize reassembles corrected tokens with the configured retokenizer.
func (c *Corrector) Retokenize(tokens []string) string {
	return c.retokenizer(tokens)
}

// CorrectToken returns the candidate with the highest frequency, or the
// token itself when the strategy finds nothing. The first maximum wins, so
// ties go to the candidate that sorts first.
func (c *Corrector) CorrectToken(token string) string {
	candidates := c.strategy.Candidates(token)
	if len(candidates) == 0 {
		return token
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if c.FrequencyOf(candidate) > c.FrequencyOf(best) {
			best = candidate
		}
	}
	return best
}

// FrequencyOf returns the corpus count of word, or 0 when the word is
// absent. A word listed with an explicit count of 0 is indistinguishable
// from an absent one.
func (c *Corrector) FrequencyOf(word string) int {
	return c.frequencies[word]
}
