package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Strategy names accepted by the engine selector.
const (
	StrategyNorvig    = "norvig"
	StrategySymDelete = "symdelete"
	StrategyFuzzy     = "fuzzy"
)

type Config struct {
	DictionaryPath  string
	Strategy        string
	Alphabet        string
	CustomWords     []string
	CustomWordCount int
	MaxConcurrent   int
	TopN            int
	RedisAddr       string
	LogDir          string
	ShowProgress    bool
	CustomSettings  map[string]string
}

func NewConfig() *Config {
	return &Config{
		Strategy:        StrategyNorvig,
		Alphabet:        "",
		CustomWords:     []string{},
		CustomWordCount: 1000000000,
		MaxConcurrent:   4,
		TopN:            15,
		LogDir:          ".spellhelm/history",
		ShowProgress:    true,
		CustomSettings:  make(map[string]string),
	}
}

// ValidStrategy reports whether name selects a known candidate strategy.
func ValidStrategy(name string) bool {
	switch name {
	case StrategyNorvig, StrategySymDelete, StrategyFuzzy:
		return true
	}
	return false
}

func LoadConfig() (*Config, error) {
	config := NewConfig()

	// Look for config files in order of preference
	configFiles := []string{
		".spellhelm.rc",
		".spellhelm.config",
		"spellhelm.config",
	}

	var configFile string
	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			configFile = file
			break
		}
	}

	if configFile == "" {
		return config, nil // No config file found, return default config
	}

	return parseConfigFile(configFile, config)
}

func LoadConfigFromFile(filename string) (*Config, error) {
	config := NewConfig()
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	return parseConfigFile(filename, config)
}

func parseConfigFile(filename string, config *Config) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				value := strings.TrimSpace(parts[1])
				value = strings.Trim(value, `"'`)

				if err := config.parseKeyValue(key, value); err != nil {
					fmt.Printf("Warning: Line %d: %v\n", lineNum, err)
				}
			}
		}
	}

	return config, scanner.Err()
}

func (c *Config) parseKeyValue(key, value string) error {
	switch key {
	case "dictionary":
		c.DictionaryPath = value
	case "strategy":
		if !ValidStrategy(value) {
			return fmt.Errorf("invalid strategy value: %s", value)
		}
		c.Strategy = value
	case "alphabet":
		c.Alphabet = value
	case "custom-words":
		c.CustomWords = append(c.CustomWords, parseList(value)...)
	case "custom-word-count":
		if count, err := strconv.Atoi(value); err == nil {
			c.CustomWordCount = count
		} else {
			return fmt.Errorf("invalid custom-word-count value: %s", value)
		}
	case "max-concurrent":
		if concurrent, err := strconv.Atoi(value); err == nil {
			c.MaxConcurrent = concurrent
		} else {
			return fmt.Errorf("invalid max-concurrent value: %s", value)
		}
	case "top-n":
		if topN, err := strconv.Atoi(value); err == nil {
			c.TopN = topN
		} else {
			return fmt.Errorf("invalid top-n value: %s", value)
		}
	case "redis-addr":
		c.RedisAddr = value
	case "log-dir":
		c.LogDir = value
	case "show-progress":
		c.ShowProgress = strings.ToLower(value) == "true"
	default:
		c.CustomSettings[key] = value
	}
	return nil
}

func parseList(value string) []string {
	// Split by comma and clean up
	items := strings.Split(value, ",")
	var result []string

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}

	return result
}

func (c *Config) GetConcurrency() int {
	if c.MaxConcurrent > 0 {
		return c.MaxConcurrent
	}
	return 2 // Default
}

func GenerateConfigFile(filename string) error {
	if filename == "" {
		filename = ".spellhelm.rc"
	}

	content := `# SpellHelm Configuration File
# Lines starting with # are comments

# Frequency dictionary: one "word count" pair per line
dictionary = "dictionary.txt"

# Candidate strategy: norvig, symdelete or fuzzy
strategy = "norvig"

# Characters tried for insertions and substitutions (norvig strategy only).
# Leave empty for lowercase letters, digits, punctuation and space.
alphabet = ""

# Words always treated as correctly spelled
custom-words = "api,url,oauth,async,json,goroutine"

# Frequency pinned to custom words so they win every ranking
custom-word-count = 1000000000

# Maximum concurrent workers in batch (file) mode
max-concurrent = 4

# Number of entries in the correction leaderboard
top-n = 15

# Redis address for the shared custom word store (optional)
# redis-addr = "localhost:6379"

# Directory for correction CSV logs
log-dir = ".spellhelm/history"

# Show progress bars while loading and correcting
show-progress = true
`

	return os.WriteFile(filename, []byte(content), 0644)
}

func (c *Config) PrintSummary() {
	fmt.Printf("Configuration Summary:\n")
	fmt.Printf("  • Dictionary: %s\n", c.DictionaryPath)
	fmt.Printf("  • Strategy: %s\n", c.Strategy)
	fmt.Printf("  • Custom words: %d\n", len(c.CustomWords))
	fmt.Printf("  • Max concurrent: %d\n", c.MaxConcurrent)
	fmt.Printf("  • Top N: %d\n", c.TopN)
	fmt.Printf("  • Log dir: %s\n", c.LogDir)

	if c.RedisAddr != "" {
		fmt.Printf("  • Redis: %s\n", c.RedisAddr)
	}
	if c.Alphabet != "" {
		fmt.Printf("  • Alphabet: %q\n", c.Alphabet)
	}
}
