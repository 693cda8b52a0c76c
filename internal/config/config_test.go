package config

import (
	"os"
	"testing"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()

	if c.Strategy != StrategyNorvig {
		t.Errorf("Expected default strategy norvig, but got %s", c.Strategy)
	}

	if c.MaxConcurrent != 4 {
		t.Errorf("Expected MaxConcurrent to be 4, but got %d", c.MaxConcurrent)
	}

	if c.TopN != 15 {
		t.Errorf("Expected TopN to be 15, but got %d", c.TopN)
	}

	if c.CustomWordCount != 1000000000 {
		t.Errorf("Expected CustomWordCount to be 1000000000, but got %d", c.CustomWordCount)
	}

	if !c.ShowProgress {
		t.Errorf("Expected ShowProgress to be true, but got false")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary config file
	content := []byte("strategy = symdelete\ndictionary = words.txt\ncustom-words = api,url\nmax-concurrent = 8")
	tmpfile, err := os.CreateTemp("", "config_test")
	if err != nil {
		t.Fatal(err)
	}

	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Load the config from the temporary file
	c, err := LoadConfigFromFile(tmpfile.Name())
	if err != nil {
		t.Fatal(err)
	}

	if c.Strategy != StrategySymDelete {
		t.Errorf("Expected strategy symdelete, but got %s", c.Strategy)
	}

	if c.DictionaryPath != "words.txt" {
		t.Errorf("Expected dictionary words.txt, but got %s", c.DictionaryPath)
	}

	if len(c.CustomWords) != 2 {
		t.Errorf("Expected 2 custom words, but got %d", len(c.CustomWords))
	}

	if c.MaxConcurrent != 8 {
		t.Errorf("Expected MaxConcurrent to be 8, but got %d", c.MaxConcurrent)
	}
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	if _, err := LoadConfigFromFile("no_such_file.rc"); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}

func TestParseKeyValueRejectsBadValues(t *testing.T) {
	c := NewConfig()

	if err := c.parseKeyValue("strategy", "psychic"); err == nil {
		t.Errorf("Expected an error for an unknown strategy")
	}

	if err := c.parseKeyValue("max-concurrent", "many"); err == nil {
		t.Errorf("Expected an error for a non-integer max-concurrent")
	}

	if err := c.parseKeyValue("top-n", "few"); err == nil {
		t.Errorf("Expected an error for a non-integer top-n")
	}
}

func TestUnknownKeysLandInCustomSettings(t *testing.T) {
	c := NewConfig()

	if err := c.parseKeyValue("project-name", "SpellHelm"); err != nil {
		t.Fatal(err)
	}

	if c.CustomSettings["project-name"] != "SpellHelm" {
		t.Errorf("Expected project-name in custom settings, but got %v", c.CustomSettings)
	}
}

func TestValidStrategy(t *testing.T) {
	for _, name := range []string{StrategyNorvig, StrategySymDelete, StrategyFuzzy} {
		if !ValidStrategy(name) {
			t.Errorf("Expected %s to be valid", name)
		}
	}

	if ValidStrategy("levenshtein") {
		t.Errorf("Expected levenshtein to be invalid")
	}
}

func TestGenerateConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	filename := tmpDir + "/.spellhelm.rc"

	if err := GenerateConfigFile(filename); err != nil {
		t.Fatalf("GenerateConfigFile failed: %v", err)
	}

	c, err := LoadConfigFromFile(filename)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if c.Strategy != StrategyNorvig {
		t.Errorf("Expected generated strategy norvig, but got %s", c.Strategy)
	}

	if c.DictionaryPath != "dictionary.txt" {
		t.Errorf("Expected generated dictionary dictionary.txt, but got %s", c.DictionaryPath)
	}
}
