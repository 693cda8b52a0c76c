package types

import "time"

// CorrectionEntry is one row of the correction leaderboard: a misspelled
// token, what it was corrected to, and how often that happened in the run.
type CorrectionEntry struct {
	Rank       int
	Token      string
	Correction string
	Count      int
	Frequency  int
}

// RunStats summarizes a correction run.
type RunStats struct {
	Tokens    int
	Corrected int
	Unknown   int
	Elapsed   time.Duration
}
