package report

import (
	"sync"
	"testing"

	"spellhelm/internal/corrector"
)

func newEngine() *corrector.Corrector {
	frequencies := map[string]int{"the": 100, "quick": 50, "hello": 10}
	return corrector.New(frequencies, corrector.NewNorvigStrategy(frequencies, ""))
}

func TestCollectorRecordsCorrections(t *testing.T) {
	engine := newEngine()
	collector := NewCollector()

	if got := collector.Correct(engine, "teh qick teh"); got != "the quick the" {
		t.Errorf("Expected 'the quick the', but got %q", got)
	}
	collector.Correct(engine, "hello zzzzzz")

	entries := collector.Generate(10)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, but got %d", len(entries))
	}
	if entries[0].Token != "teh" || entries[0].Correction != "the" || entries[0].Count != 2 {
		t.Errorf("Expected teh->the twice at the top, but got %+v", entries[0])
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("Expected ranks 1 and 2, but got %d and %d", entries[0].Rank, entries[1].Rank)
	}

	stats := collector.Stats()
	if stats.Tokens != 5 {
		t.Errorf("Expected 5 tokens, but got %d", stats.Tokens)
	}
	if stats.Corrected != 3 {
		t.Errorf("Expected 3 corrections, but got %d", stats.Corrected)
	}
	if stats.Unknown != 1 {
		t.Errorf("Expected 1 unknown token, but got %d", stats.Unknown)
	}
}

func TestGenerateHonorsTopN(t *testing.T) {
	engine := newEngine()
	collector := NewCollector()
	collector.Correct(engine, "teh qick hxllo")

	entries := collector.Generate(1)
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, but got %d", len(entries))
	}
}

func TestCollectorIsSafeForConcurrentUse(t *testing.T) {
	engine := newEngine()
	collector := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				collector.Correct(engine, "teh qick")
			}
		}()
	}
	wg.Wait()

	stats := collector.Stats()
	if stats.Tokens != 800 {
		t.Errorf("Expected 800 tokens, but got %d", stats.Tokens)
	}
	if stats.Corrected != 800 {
		t.Errorf("Expected 800 corrections, but got %d", stats.Corrected)
	}
}
