package report

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"spellhelm/internal/corrector"
	"spellhelm/internal/types"

	"github.com/charmbracelet/lipgloss"
)

// Collector accumulates per-token correction observations across a run.
// The corrector itself is lock-free after construction, so the collector
// carries the mutex for concurrent batch workers.
type Collector struct {
	mu        sync.Mutex
	seen      map[string]*observation
	tokens    int
	corrected int
	unknown   int
	started   time.Time
}

type observation struct {
	correction string
	frequency  int
	count      int
}

// NewCollector creates an empty collector and starts the run clock.
func NewCollector() *Collector {
	return &Collector{
		seen:    make(map[string]*observation),
		started: time.Now(),
	}
}

// Correct runs the utterance through the engine and records every token
// that changed. Safe for concurrent use.
func (c *Collector) Correct(engine *corrector.Corrector, utterance string) string {
	tokens, corrected := engine.CorrectTokens(utterance)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tokens += len(tokens)
	for i, token := range tokens {
		if corrected[i] == token {
			if engine.FrequencyOf(token) <= 0 {
				c.unknown++
			}
			continue
		}
		c.corrected++
		obs := c.seen[token]
		if obs == nil {
			obs = &observation{
				correction: corrected[i],
				frequency:  engine.FrequencyOf(corrected[i]),
			}
			c.seen[token] = obs
		}
		obs.count++
	}

	return engine.Retokenize(corrected)
}

// Stats returns the run summary so far.
func (c *Collector) Stats() types.RunStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return types.RunStats{
		Tokens:    c.tokens,
		Corrected: c.corrected,
		Unknown:   c.unknown,
		Elapsed:   time.Since(c.started),
	}
}

// Generate ranks the observed corrections by how often they fired.
func (c *Collector) Generate(topN int) []types.CorrectionEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entries []types.CorrectionEntry
	for token, obs := range c.seen {
		entries = append(entries, types.CorrectionEntry{
			Token:      token,
			Correction: obs.correction,
			Count:      obs.count,
			Frequency:  obs.frequency,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5d5d5d")).
			PaddingLeft(1).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	rankStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#878787"))

	tokenStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#ff0000"))

	correctionStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#00FF00"))

	frequencyStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#ffd700"))
)

// PrintCorrections prints the ranked correction leaderboard.
func PrintCorrections(entries []types.CorrectionEntry) {
	fmt.Println(titleStyle.Render("Correction Leaderboard - Most Corrected Tokens"))

	if len(entries) == 0 {
		fmt.Println(cellStyle.Render("Nothing needed correcting."))
		return
	}

	for _, entry := range entries {
		rank := rankStyle.Render(fmt.Sprintf("%2d", entry.Rank))
		token := tokenStyle.Render(entry.Token)
		correction := correctionStyle.Render(entry.Correction)
		frequency := frequencyStyle.Render(fmt.Sprintf("%d", entry.Frequency))

		fmt.Printf("%s. %s -> %s – %d times, corpus frequency %s\n",
			rank, token, correction, entry.Count, frequency)
	}
}

// PrintStats prints the run summary line.
func PrintStats(stats types.RunStats) {
	fmt.Printf("Processed %d tokens: %d corrected, %d unknown, in %s\n",
		stats.Tokens, stats.Corrected, stats.Unknown, stats.Elapsed.Round(time.Millisecond))
}
