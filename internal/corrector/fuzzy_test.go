package corrector

import "testing"

func TestFuzzyShortCircuitsOnKnownToken(t *testing.T) {
	frequencies := map[string]int{"hello": 10, "hells": 1000}
	s := NewFuzzyStrategy(frequencies)

	candidates := s.Candidates("hello")
	if len(candidates) != 1 || candidates[0] != "hello" {
		t.Errorf("Expected [hello], but got %v", candidates)
	}
}

func TestFuzzyCorrectsSimpleTypo(t *testing.T) {
	frequencies := map[string]int{"hello": 10, "world": 5}
	engine := New(frequencies, NewFuzzyStrategy(frequencies))

	if got := engine.Correct("helo world"); got != "hello world" {
		t.Errorf("Expected 'hello world', but got %q", got)
	}
}

func TestFuzzyUnknownTokenFallsBack(t *testing.T) {
	frequencies := map[string]int{"hello": 10}
	engine := New(frequencies, NewFuzzyStrategy(frequencies))

	if got := engine.CorrectToken("qqqqqqqq"); got != "qqqqqqqq" {
		t.Errorf("Expected the token back, but got %q", got)
	}
}
