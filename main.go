package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"spellhelm/internal/config"
	"spellhelm/internal/corrector"
	"spellhelm/internal/customdict"
	"spellhelm/internal/dictionary"
	"spellhelm/internal/history"
	"spellhelm/internal/report"
	"spellhelm/internal/utils"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const VERSION = "1.0.0"
const PROJECT_NAME = "SpellHelm"

// ASCII helm art
const HELM_ART = `
    ⎈ SpellHelm ⎈

        .-""-.
       /  ⎈⎈  \
      |  ⎈  ⎈  |
       \  ⎈⎈  /
        '-..-'

   Steer Your Spelling Straight
`

const MINI_HELM = `⎈`

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		h        = flag.Bool("h", false, "Show help message (short)")
		version  = flag.Bool("version", false, "Show version information")
		v        = flag.Bool("v", false, "Show version information (short)")
		showLogo = flag.Bool("logo", false, "Show SpellHelm ASCII art")

		// Correction flags
		dictPath     = flag.String("dict", "", "Path to the frequency dictionary file")
		strategyName = flag.String("strategy", "", "Candidate strategy: norvig, symdelete or fuzzy")
		alphabet     = flag.String("alphabet", "", "Characters tried for insertions/substitutions (norvig strategy)")
		inputFile    = flag.String("file", "", "Correct a text file line by line")
		interactive  = flag.Bool("interactive", false, "Correct lines interactively from a prompt")
		jobs         = flag.Int("jobs", 0, "Concurrent workers in file mode (default from config)")

		// Report flags
		showReport = flag.Bool("report", false, "Show the correction leaderboard after the run")
		topN       = flag.Int("top", 0, "Number of entries to show in the correction leaderboard (default: 15)")
		logHistory = flag.Bool("log-history", false, "Enable logging of correction data to CSV files")
		logDir     = flag.String("log-dir", ".spellhelm/history", "Directory to save correction CSV logs")

		// Custom dictionary flags (Redis-backed)
		redisAddr  = flag.String("redis", "", "Redis address for the shared custom word store")
		addWord    = flag.String("add-word", "", "Add a word to the custom dictionary and exit")
		removeWord = flag.String("remove-word", "", "Remove a word from the custom dictionary and exit")
		listWords  = flag.Bool("list-words", false, "List the custom dictionary and exit")

		// Configuration flags
		configFile     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate a sample configuration file")
		showConfig     = flag.Bool("show-config", false, "Show current configuration and exit")

		verbose = flag.Bool("verbose", false, "Enable verbose output")
		quiet   = flag.Bool("quiet", false, "Suppress non-essential output")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *help || *h {
		showUsage()
		return
	}

	if *version || *v {
		showVersion()
		return
	}

	if *showLogo {
		showHelmArt()
		return
	}

	if *generateConfig {
		filename := ".spellhelm.rc"
		if err := config.GenerateConfigFile(filename); err != nil {
			log.Fatalf("Failed to generate config file: %v", err)
		}
		fmt.Printf("✅ Generated configuration file: %s\n", filename)
		return
	}

	// Load configuration
	var cfg *config.Config
	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfigFromFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", *configFile, err)
		}
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			if !*quiet {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
			}
			cfg = config.NewConfig()
		}
	}

	// Apply flag overrides
	if *dictPath != "" {
		cfg.DictionaryPath = *dictPath
	}
	if *strategyName != "" {
		cfg.Strategy = *strategyName
	}
	if *alphabet != "" {
		cfg.Alphabet = *alphabet
	}
	if *jobs > 0 {
		cfg.MaxConcurrent = *jobs
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}
	if *quiet {
		cfg.ShowProgress = false
	}

	if *showConfig {
		cfg.PrintSummary()
		return
	}

	if !config.ValidStrategy(cfg.Strategy) {
		log.Fatalf("Unknown strategy %q (want norvig, symdelete or fuzzy)", cfg.Strategy)
	}

	ctx := context.Background()

	// Custom dictionary management verbs
	if *addWord != "" || *removeWord != "" || *listWords {
		if cfg.RedisAddr == "" {
			log.Fatal("Custom dictionary verbs need a Redis address (use -redis or redis-addr in the config).")
		}
		store, err := customdict.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to reach the custom word store: %v", err)
		}
		defer store.Close()
		manageCustomWords(ctx, store, *addWord, *removeWord, *listWords)
		return
	}

	if cfg.DictionaryPath == "" {
		log.Fatal("No dictionary given. Use -dict or set dictionary in the config file.")
	}

	if !*quiet {
		fmt.Print(color.CyanString(HELM_ART))
	}

	if *verbose && !*quiet {
		cfg.PrintSummary()
		fmt.Println()
	}

	// Load the frequency dictionary
	frequencies, err := dictionary.Load(cfg.DictionaryPath, cfg.ShowProgress)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if *verbose && !*quiet {
		fmt.Printf("📖 Loaded %d dictionary words from %s\n", len(frequencies), cfg.DictionaryPath)
	}

	// Merge config and Redis custom words before the engine is built
	customWords := cfg.CustomWords
	if cfg.RedisAddr != "" {
		store, err := customdict.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to reach the custom word store: %v", err)
		}
		stored, err := store.All(ctx)
		store.Close()
		if err != nil {
			log.Fatalf("Failed to load custom words: %v", err)
		}
		customWords = append(customWords, stored...)
	}
	dictionary.MergeCustomWords(frequencies, customWords, cfg.CustomWordCount)
	if *verbose && !*quiet && len(customWords) > 0 {
		fmt.Printf("📌 Pinned %d custom words\n", len(customWords))
	}

	engine := buildEngine(cfg, frequencies, *verbose && !*quiet)
	collector := report.NewCollector()

	switch {
	case *interactive:
		runInteractive(engine, collector, *quiet)
	case *inputFile != "":
		if err := runFile(engine, collector, *inputFile, cfg.GetConcurrency(), cfg.ShowProgress); err != nil {
			log.Fatalf("Failed to correct %s: %v", *inputFile, err)
		}
	case len(flag.Args()) > 0:
		fmt.Println(collector.Correct(engine, strings.Join(flag.Args(), " ")))
	default:
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			runReader(engine, collector, bufio.NewScanner(os.Stdin))
		} else {
			showUsage()
			return
		}
	}

	if *showReport {
		fmt.Println()
		report.PrintCorrections(collector.Generate(cfg.TopN))
	}

	stats := collector.Stats()
	if !*quiet {
		fmt.Printf("\n%s ", MINI_HELM)
		report.PrintStats(stats)
	}

	if *logHistory {
		if err := history.WriteCorrectionLogCSV(cfg.LogDir, collector.Generate(cfg.TopN)); err != nil {
			fmt.Printf("❌ Failed to log corrections: %v\n", err)
		} else if err := history.WriteRunStatsCSV(cfg.LogDir, stats); err != nil {
			fmt.Printf("❌ Failed to log run stats: %v\n", err)
		} else if !*quiet {
			fmt.Printf("✅ Correction history logged to %s\n", cfg.LogDir)
		}
	}
}

// buildEngine assembles the configured strategy and the corrector around it.
func buildEngine(cfg *config.Config, frequencies map[string]int, verbose bool) *corrector.Corrector {
	var strategy corrector.Strategy
	started := time.Now()

	switch cfg.Strategy {
	case config.StrategySymDelete:
		s := corrector.NewSymDeleteStrategy(frequencies)
		if verbose {
			fmt.Printf("🗂  Built deletion index with %d keys in %s\n", s.IndexSize(), time.Since(started).Round(time.Millisecond))
		}
		strategy = s
	case config.StrategyFuzzy:
		strategy = corrector.NewFuzzyStrategy(frequencies)
		if verbose {
			fmt.Printf("🗂  Trained fuzzy model in %s\n", time.Since(started).Round(time.Millisecond))
		}
	default:
		strategy = corrector.NewNorvigStrategy(frequencies, cfg.Alphabet)
	}

	return corrector.New(frequencies, strategy)
}

func manageCustomWords(ctx context.Context, store *customdict.Store, addWord, removeWord string, listWords bool) {
	if addWord != "" {
		if err := store.Add(ctx, strings.ToLower(addWord)); err != nil {
			log.Fatalf("Failed to add %q: %v", addWord, err)
		}
		fmt.Printf("✅ Added %q to the custom dictionary\n", strings.ToLower(addWord))
	}

	if removeWord != "" {
		if err := store.Remove(ctx, strings.ToLower(removeWord)); err != nil {
			log.Fatalf("Failed to remove %q: %v", removeWord, err)
		}
		fmt.Printf("✅ Removed %q from the custom dictionary\n", strings.ToLower(removeWord))
	}

	if listWords {
		words, err := store.All(ctx)
		if err != nil {
			log.Fatalf("Failed to list custom words: %v", err)
		}
		if len(words) == 0 {
			fmt.Println("Custom dictionary is empty.")
			return
		}
		for _, word := range words {
			fmt.Println(word)
		}
	}
}

func runInteractive(engine *corrector.Corrector, collector *report.Collector, quiet bool) {
	if !quiet {
		fmt.Printf("%s Type text to correct, Ctrl-D to finish.\n", MINI_HELM)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.BlueString("> "))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Println(color.GreenString(collector.Correct(engine, line)))
	}
	fmt.Println()
}

// runFile corrects every line of the file with a bounded worker pool and
// prints the corrected lines in their original order.
func runFile(engine *corrector.Corrector, collector *report.Collector, path string, concurrency int, showProgress bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(lines)), "Correcting")
	}

	corrected := make([]string, len(lines))
	semaphore := utils.NewSemaphore(concurrency)
	var wg sync.WaitGroup

	for i, line := range lines {
		wg.Add(1)
		go func(i int, line string) {
			defer wg.Done()
			semaphore.Acquire()
			defer semaphore.Release()

			corrected[i] = collector.Correct(engine, line)
			if bar != nil {
				bar.Add(1)
			}
		}(i, line)
	}
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}

	for _, line := range corrected {
		fmt.Println(line)
	}
	return nil
}

func runReader(engine *corrector.Corrector, collector *report.Collector, scanner *bufio.Scanner) {
	for scanner.Scan() {
		fmt.Println(collector.Correct(engine, scanner.Text()))
	}
}

func showHelmArt() {
	fmt.Print(color.CyanString(HELM_ART))
	fmt.Println(color.New(color.Bold).Sprint("\nSpellHelm v" + VERSION))
	fmt.Println("Frequency-ranked spelling correction at the command line")
}

func showVersion() {
	fmt.Printf("%s %s v%s\n", MINI_HELM, PROJECT_NAME, VERSION)
	fmt.Printf("A frequency-ranked spelling corrector\n")
	fmt.Printf("Corrects tokens against a corpus dictionary using pluggable candidate strategies\n")
}

func showUsage() {
	fmt.Print(color.CyanString(HELM_ART))
	fmt.Printf("%s\n", color.New(color.Bold).Sprint("SpellHelm - Steer Your Spelling Straight"))
	fmt.Printf("\n%s\n", color.BlueString("USAGE:"))
	fmt.Printf("  %s -dict FILE [OPTIONS] [TEXT...]\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("ARGUMENTS:"))
	fmt.Printf("  TEXT                   Utterance to correct; stdin is corrected when piped\n\n")

	fmt.Printf("%s\n", color.BlueString("CORRECTION OPTIONS:"))
	fmt.Printf("  -dict FILE             Frequency dictionary (one \"word count\" per line)\n")
	fmt.Printf("  -strategy NAME         Candidate strategy: norvig (default), symdelete, fuzzy\n")
	fmt.Printf("  -alphabet CHARS        Insert/substitute character set for the norvig strategy\n")
	fmt.Printf("  -file FILE             Correct a text file line by line\n")
	fmt.Printf("  -jobs N                Concurrent workers in file mode\n")
	fmt.Printf("  -interactive           Correct lines interactively from a prompt\n\n")

	fmt.Printf("%s\n", color.BlueString("REPORT OPTIONS:"))
	fmt.Printf("  -report                Show the correction leaderboard after the run\n")
	fmt.Printf("  -top N                 Leaderboard size (default: 15)\n")
	fmt.Printf("  -log-history           Log correction data to CSV files\n")
	fmt.Printf("  -log-dir DIR           Directory for CSV logs (default: .spellhelm/history)\n\n")

	fmt.Printf("%s\n", color.BlueString("CUSTOM DICTIONARY OPTIONS:"))
	fmt.Printf("  -redis ADDR            Redis address of the shared custom word store\n")
	fmt.Printf("  -add-word WORD         Add a word to the custom dictionary and exit\n")
	fmt.Printf("  -remove-word WORD      Remove a word from the custom dictionary and exit\n")
	fmt.Printf("  -list-words            List the custom dictionary and exit\n\n")

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION OPTIONS:"))
	fmt.Printf("  -config FILE           Path to configuration file (.spellhelm.rc)\n")
	fmt.Printf("  -generate-config       Generate a sample configuration file\n")
	fmt.Printf("  -show-config           Show current configuration and exit\n\n")

	fmt.Printf("%s\n", color.BlueString("OTHER OPTIONS:"))
	fmt.Printf("  -logo                  Show SpellHelm ASCII art\n")
	fmt.Printf("  -verbose               Enable verbose output\n")
	fmt.Printf("  -quiet                 Suppress non-essential output\n")
	fmt.Printf("  -h, -help              Show this help message\n")
	fmt.Printf("  -v, -version           Show version information\n\n")

	fmt.Printf("%s\n", color.BlueString("EXAMPLES:"))
	fmt.Printf("  %s -dict corpus.txt teh qick brwn fox\n", os.Args[0])
	fmt.Printf("  %s -dict corpus.txt -strategy symdelete -file draft.txt -jobs 8 -report\n", os.Args[0])
	fmt.Printf("  cat draft.txt | %s -dict corpus.txt -quiet\n", os.Args[0])
	fmt.Printf("  %s -redis localhost:6379 -add-word goroutine\n", os.Args[0])
	fmt.Printf("  %s -generate-config\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION FILE:"))
	fmt.Printf("  SpellHelm looks for configuration files in this order:\n")
	fmt.Printf("  1. .spellhelm.rc\n")
	fmt.Printf("  2. .spellhelm.config\n")
	fmt.Printf("  3. spellhelm.config\n\n")

	fmt.Printf("  Use -generate-config to create a sample configuration file.\n")
}
