package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Load reads a frequency dictionary file into a word -> count table.
//
// The format is one "word count" pair per line, whitespace separated.
// Blank lines and lines starting with # are skipped. Words are lowercased;
// whatever count the file carries is stored as-is, so a word listed with
// count 0 stays unknown to the corrector. A count that does not parse as an
// integer fails the whole load.
//
// When showProgress is set, a byte-level progress bar tracks the read.
func Load(path string, showProgress bool) (map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if showProgress {
		if info, err := file.Stat(); err == nil {
			bar := progressbar.DefaultBytes(info.Size(), "Loading dictionary")
			reader = io.TeeReader(file, bar)
		}
	}

	frequencies := make(map[string]int)
	scanner := bufio.NewScanner(reader)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("dictionary %s line %d: expected \"word count\", got %q", path, lineNum, line)
		}

		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("dictionary %s line %d: invalid count %q: %w", path, lineNum, fields[1], err)
		}

		frequencies[strings.ToLower(fields[0])] = count
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return frequencies, nil
}

// MergeCustomWords pins user-supplied words into the table at a count high
// enough to win every frequency contest. Called before the corrector is
// constructed; the table is immutable afterwards.
func MergeCustomWords(frequencies map[string]int, words []string, count int) {
	for _, word := range words {
		frequencies[strings.ToLower(word)] = count
	}
}
