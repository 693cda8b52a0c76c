package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spellhelm/internal/types"
)

// WriteLogToCSV writes a generic correction log to a CSV file.
func WriteLogToCSV(dir, filename string, header []string, data [][]string) error {
	if dir == "" {
		return fmt.Errorf("log directory not specified")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// WriteCorrectionLogCSV writes the ranked correction entries to a CSV file.
func WriteCorrectionLogCSV(dir string, entries []types.CorrectionEntry) error {
	filename := fmt.Sprintf("corrections_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Rank", "Token", "Correction", "Count", "Frequency"}
	data := make([][]string, len(entries))
	for i, entry := range entries {
		data[i] = []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Token,
			entry.Correction,
			fmt.Sprintf("%d", entry.Count),
			fmt.Sprintf("%d", entry.Frequency),
		}
	}
	return WriteLogToCSV(dir, filename, header, data)
}

// WriteRunStatsCSV writes the run summary to a CSV file.
func WriteRunStatsCSV(dir string, stats types.RunStats) error {
	filename := fmt.Sprintf("run_stats_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Tokens", "Corrected", "Unknown", "ElapsedMs"}
	data := [][]string{{
		fmt.Sprintf("%d", stats.Tokens),
		fmt.Sprintf("%d", stats.Corrected),
		fmt.Sprintf("%d", stats.Unknown),
		fmt.Sprintf("%d", stats.Elapsed.Milliseconds()),
	}}
	return WriteLogToCSV(dir, filename, header, data)
}
